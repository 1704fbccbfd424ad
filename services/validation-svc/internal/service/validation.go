package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	commonv1 "logistics/gen/go/logistics/common/v1"
	validationv1 "logistics/gen/go/logistics/validation/v1"
	"logistics/pkg/telemetry"
	"logistics/services/validation-svc/internal/validators"
)

var startTime = time.Now()

// ValidationService проверяет форму набора точек одного дня до того, как
// routing-svc передаст их оптимизатору: координаты, единственность START/END,
// уникальность stop_id, границы и уникальность fixed_seq у VIA-точек.
type ValidationService struct {
	validationv1.UnimplementedValidationServiceServer
	version string
}

func NewValidationService(version string) *ValidationService {
	return &ValidationService{version: version}
}

// ValidateStops проверяет форму точек дня перед оптимизацией маршрута.
func (s *ValidationService) ValidateStops(
	ctx context.Context,
	req *validationv1.ValidateStopsRequest,
) (*validationv1.ValidateStopsResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "ValidationService.ValidateStops",
		trace.WithAttributes(
			attribute.String("day_id", req.GetDayId()),
			attribute.Int("stops", len(req.GetStops())),
		),
	)
	defer span.End()

	start := time.Now()

	var allErrors []*commonv1.ValidationError
	var totalChecks, passedChecks, failedChecks int32

	shapeErrors := validators.ValidateRequestShape(req)
	allErrors = append(allErrors, shapeErrors...)
	totalChecks++
	if len(shapeErrors) > 0 {
		failedChecks += int32(len(shapeErrors))
	} else {
		passedChecks++
	}

	structureErrors := validators.ValidateStructure(req.GetStops())
	allErrors = append(allErrors, structureErrors...)
	totalChecks++
	if len(structureErrors) > 0 {
		failedChecks += int32(len(structureErrors))
	} else {
		passedChecks++
	}

	businessErrors := validators.ValidateBusinessRules(req.GetStops())
	allErrors = append(allErrors, businessErrors...)
	totalChecks++
	if len(businessErrors) > 0 {
		failedChecks += int32(len(businessErrors))
	} else {
		passedChecks++
	}

	isValid := len(allErrors) == 0

	telemetry.AddEvent(ctx, "stop_validation_completed",
		attribute.Bool("valid", isValid),
		attribute.Int("errors", len(allErrors)),
	)
	span.SetAttributes(attribute.Bool("valid", isValid))

	return &validationv1.ValidateStopsResponse{
		Warnings: []string{},
		Result: &validationv1.ValidationResult{
			IsValid: isValid,
			Errors:  allErrors,
		},
		Metrics: &validationv1.ValidationMetrics{
			TotalChecks:  totalChecks,
			PassedChecks: passedChecks,
			FailedChecks: failedChecks,
			DurationMs:   float64(time.Since(start).Microseconds()) / 1000.0,
		},
	}, nil
}

// Health возвращает статус сервиса.
func (s *ValidationService) Health(
	ctx context.Context,
	_ *validationv1.HealthRequest,
) (*validationv1.HealthResponse, error) {
	_, span := telemetry.StartSpan(ctx, "ValidationService.Health")
	defer span.End()

	return &validationv1.HealthResponse{
		Status:        "SERVING",
		Version:       s.version,
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
	}, nil
}
