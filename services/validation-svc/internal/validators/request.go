package validators

import (
	commonv1 "logistics/gen/go/logistics/common/v1"
	pkgerrors "logistics/pkg/apperror"
	validationv1 "logistics/gen/go/logistics/validation/v1"
)

// ValidateRequestShape проверяет поля самого запроса, не зависящие от
// отдельных точек: day_id и профиль передвижения.
func ValidateRequestShape(req *validationv1.ValidateStopsRequest) []*commonv1.ValidationError {
	var errors []*commonv1.ValidationError

	if req == nil {
		return append(errors, &commonv1.ValidationError{
			Field:   "request",
			Message: "Запрос не может быть nil",
			Code:    "NIL_REQUEST",
		})
	}

	if req.DayId == "" {
		errors = append(errors, &commonv1.ValidationError{
			Field:   "day_id",
			Message: "day_id не может быть пустым",
			Code:    "NIL_REQUEST",
		})
	}

	if !validProfile(req.Profile) {
		errors = append(errors, &commonv1.ValidationError{
			Field:   "profile",
			Message: "Неизвестный профиль передвижения",
			Code:    string(pkgerrors.CodeValidationUnsupportedProfile),
		})
	}

	return errors
}

func validProfile(p commonv1.Profile) bool {
	switch p {
	case commonv1.Profile_PROFILE_CAR, commonv1.Profile_PROFILE_BIKE, commonv1.Profile_PROFILE_WALKING:
		return true
	default:
		return false
	}
}
