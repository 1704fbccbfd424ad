package validators

import (
	"fmt"

	commonv1 "logistics/gen/go/logistics/common/v1"
	pkgerrors "logistics/pkg/apperror"
	validationv1 "logistics/gen/go/logistics/validation/v1"
)

// ValidateBusinessRules проверяет fixed_seq у VIA-точек: границы диапазона и
// уникальность. Это та же проверка, что оптимизатор выполняет заново перед
// построением маршрута (она необходима самому алгоритму и не может зависеть
// от успеха внешнего вызова), здесь она служит ранней обратной связью вызывающей
// стороне до траты времени на сам вызов оптимизатора.
func ValidateBusinessRules(stops []*validationv1.StopInput) []*commonv1.ValidationError {
	var errors []*commonv1.ValidationError

	n := len(stops)
	fixedSeqs := make(map[int32]bool)

	for i, s := range stops {
		switch s.Kind {
		case commonv1.StopKind_STOP_KIND_START:
			if s.FixedSeq != nil && *s.FixedSeq != 1 {
				errors = append(errors, &commonv1.ValidationError{
					Field:   fmt.Sprintf("stops[%d].fixed_seq", i),
					Message: "fixed_seq стартовой точки должен быть 1, если задан",
					Code:    string(pkgerrors.CodeValidationFixedSeqConflict),
				})
			}
		case commonv1.StopKind_STOP_KIND_VIA:
			if s.FixedSeq == nil {
				continue
			}
			seq := *s.FixedSeq
			if seq < 2 || int(seq) > n-1 {
				errors = append(errors, &commonv1.ValidationError{
					Field:   fmt.Sprintf("stops[%d].fixed_seq", i),
					Message: fmt.Sprintf("fixed_seq %d вне диапазона [2, %d]", seq, n-1),
					Code:    string(pkgerrors.CodeValidationFixedSeqConflict),
				})
				continue
			}
			if fixedSeqs[seq] {
				errors = append(errors, &commonv1.ValidationError{
					Field:   fmt.Sprintf("stops[%d].fixed_seq", i),
					Message: fmt.Sprintf("Повторяющийся fixed_seq %d среди VIA-точек", seq),
					Code:    string(pkgerrors.CodeValidationFixedSeqConflict),
				})
				continue
			}
			fixedSeqs[seq] = true
		}
	}

	return errors
}
