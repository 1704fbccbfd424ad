package domain

import "errors"

// Ошибки внутренних инвариантов доменных сущностей. Ошибки валидации,
// видимые вызывающей стороне, используют pkg/apperror; эти ошибки
// сигнализируют о нарушении инвариантов уже загруженных из хранилища данных.
var (
	ErrInvalidDaySeq     = errors.New("domain: day seq must be positive")
	ErrDayStatusMismatch = errors.New("domain: day status and deleted_at are inconsistent")
	ErrInvalidStopKind   = errors.New("domain: unknown stop kind")
	ErrInvalidCoords     = errors.New("domain: coordinates out of range")
)
