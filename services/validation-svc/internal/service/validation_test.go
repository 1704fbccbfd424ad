package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonv1 "logistics/gen/go/logistics/common/v1"
	validationv1 "logistics/gen/go/logistics/validation/v1"
)

func seq(v int32) *int32 { return &v }

func TestNewValidationService(t *testing.T) {
	svc := NewValidationService("1.0.0")
	require.NotNil(t, svc)
	assert.Equal(t, "1.0.0", svc.version)
}

func validDayStops() []*validationv1.StopInput {
	return []*validationv1.StopInput{
		{StopId: "start", Point: &commonv1.LatLon{Lat: 32.0, Lon: 34.0}, Kind: commonv1.StopKind_STOP_KIND_START},
		{StopId: "via-1", Point: &commonv1.LatLon{Lat: 32.05, Lon: 34.05}, Kind: commonv1.StopKind_STOP_KIND_VIA},
		{StopId: "via-2", Point: &commonv1.LatLon{Lat: 32.1, Lon: 34.1}, Kind: commonv1.StopKind_STOP_KIND_VIA},
		{StopId: "end", Point: &commonv1.LatLon{Lat: 32.2, Lon: 34.2}, Kind: commonv1.StopKind_STOP_KIND_END},
	}
}

func TestValidateStops_Valid(t *testing.T) {
	svc := NewValidationService("1.0.0")
	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   validDayStops(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Result.IsValid, "errors: %+v", resp.Result.Errors)
	assert.NotNil(t, resp.Metrics)
}

func TestValidateStops_MissingDayID(t *testing.T) {
	svc := NewValidationService("1.0.0")
	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   validDayStops(),
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidateStops_NoStart(t *testing.T) {
	svc := NewValidationService("1.0.0")
	stops := validDayStops()
	stops[0].Kind = commonv1.StopKind_STOP_KIND_VIA

	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidateStops_DuplicateStopID(t *testing.T) {
	svc := NewValidationService("1.0.0")
	stops := validDayStops()
	stops[2].StopId = stops[1].StopId

	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidateStops_InvalidCoordinates(t *testing.T) {
	svc := NewValidationService("1.0.0")
	stops := validDayStops()
	stops[1].Point = &commonv1.LatLon{Lat: 999, Lon: 34.0}

	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidateStops_FixedSeqOutOfRange(t *testing.T) {
	svc := NewValidationService("1.0.0")
	stops := validDayStops()
	stops[1].Fixed = true
	stops[1].FixedSeq = seq(99)

	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidateStops_DuplicateFixedSeq(t *testing.T) {
	svc := NewValidationService("1.0.0")
	stops := validDayStops()
	stops[1].Fixed = true
	stops[1].FixedSeq = seq(2)
	stops[2].Fixed = true
	stops[2].FixedSeq = seq(2)

	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidateStops_UnsupportedProfile(t *testing.T) {
	svc := NewValidationService("1.0.0")
	resp, err := svc.ValidateStops(context.Background(), &validationv1.ValidateStopsRequest{
		DayId:   "day-1",
		Profile: commonv1.Profile_PROFILE_UNSPECIFIED,
		Stops:   validDayStops(),
	})
	require.NoError(t, err)
	assert.False(t, resp.Result.IsValid)
}

func TestValidationService_Health(t *testing.T) {
	svc := NewValidationService("1.0.0")
	resp, err := svc.Health(context.Background(), &validationv1.HealthRequest{})
	require.NoError(t, err)
	assert.Equal(t, "SERVING", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))
}
