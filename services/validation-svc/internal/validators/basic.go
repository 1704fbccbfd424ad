package validators

import (
	"fmt"

	commonv1 "logistics/gen/go/logistics/common/v1"
	pkgerrors "logistics/pkg/apperror"
	validationv1 "logistics/gen/go/logistics/validation/v1"
)

// ValidateStructure проверяет базовую форму набора точек дня: координаты,
// наличие ровно одной START и ровно одной END, отсутствие дублей stop_id.
func ValidateStructure(stops []*validationv1.StopInput) []*commonv1.ValidationError {
	var errors []*commonv1.ValidationError

	if len(stops) == 0 {
		return append(errors, &commonv1.ValidationError{
			Field:   "stops",
			Message: "День не содержит ни одной точки",
			Code:    string(pkgerrors.CodeValidationTooFewPoints),
		})
	}

	seen := make(map[string]bool, len(stops))
	var startCount, endCount int

	for i, s := range stops {
		if s.StopId == "" {
			errors = append(errors, &commonv1.ValidationError{
				Field:   fmt.Sprintf("stops[%d].stop_id", i),
				Message: "stop_id не может быть пустым",
				Code:    string(pkgerrors.CodeValidationDuplicateID),
			})
		} else if seen[s.StopId] {
			errors = append(errors, &commonv1.ValidationError{
				Field:   fmt.Sprintf("stops[%d].stop_id", i),
				Message: fmt.Sprintf("Дубликат stop_id: %s", s.StopId),
				Code:    string(pkgerrors.CodeValidationDuplicateID),
			})
		}
		seen[s.StopId] = true

		if !validCoord(s.Point) {
			errors = append(errors, &commonv1.ValidationError{
				Field:   fmt.Sprintf("stops[%d].point", i),
				Message: fmt.Sprintf("Координаты вне допустимого диапазона: %v", s.Point),
				Code:    string(pkgerrors.CodeValidationInvalidCoords),
			})
		}

		switch s.Kind {
		case commonv1.StopKind_STOP_KIND_START:
			startCount++
		case commonv1.StopKind_STOP_KIND_END:
			endCount++
		}
	}

	if startCount == 0 {
		errors = append(errors, &commonv1.ValidationError{
			Field:   "stops",
			Message: "Не указана стартовая точка дня",
			Code:    string(pkgerrors.CodeValidationMissingStart),
		})
	} else if startCount > 1 {
		errors = append(errors, &commonv1.ValidationError{
			Field:   "stops",
			Message: fmt.Sprintf("Найдено несколько стартовых точек: %d", startCount),
			Code:    string(pkgerrors.CodeValidationMultipleStart),
		})
	}

	if endCount == 0 {
		errors = append(errors, &commonv1.ValidationError{
			Field:   "stops",
			Message: "Не указана конечная точка дня",
			Code:    string(pkgerrors.CodeValidationMissingEnd),
		})
	} else if endCount > 1 {
		errors = append(errors, &commonv1.ValidationError{
			Field:   "stops",
			Message: fmt.Sprintf("Найдено несколько конечных точек: %d", endCount),
			Code:    string(pkgerrors.CodeValidationMultipleEnd),
		})
	}

	return errors
}

func validCoord(p *commonv1.LatLon) bool {
	if p == nil {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}
