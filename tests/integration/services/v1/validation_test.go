package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonv1 "logistics/gen/go/logistics/common/v1"
	validationv1 "logistics/gen/go/logistics/validation/v1"
	"logistics/tests/integration/testutil"
)

func seqPtr(v int32) *int32 { return &v }

func validStopsFixture() []*validationv1.StopInput {
	return []*validationv1.StopInput{
		{
			StopId: "start",
			Point:  &commonv1.LatLon{Lat: 41.0082, Lon: 28.9784},
			Kind:   commonv1.StopKind_STOP_KIND_START,
			Fixed:  true, FixedSeq: seqPtr(1),
		},
		{
			StopId: "via-1",
			Point:  &commonv1.LatLon{Lat: 40.9862, Lon: 29.0281},
			Kind:   commonv1.StopKind_STOP_KIND_VIA,
		},
		{
			StopId: "via-2",
			Point:  &commonv1.LatLon{Lat: 41.0138, Lon: 28.9497},
			Kind:   commonv1.StopKind_STOP_KIND_VIA,
		},
		{
			StopId: "end",
			Point:  &commonv1.LatLon{Lat: 41.0255, Lon: 28.9744},
			Kind:   commonv1.StopKind_STOP_KIND_END,
		},
	}
}

func TestValidationService_ValidateStops(t *testing.T) {
	client := SetupValidationClient(t)
	ctx, cancel := testutil.Context(t)
	defer cancel()

	tests := []struct {
		name      string
		mutate    func(stops []*validationv1.StopInput) []*validationv1.StopInput
		wantValid bool
	}{
		{
			name:      "valid day",
			mutate:    func(s []*validationv1.StopInput) []*validationv1.StopInput { return s },
			wantValid: true,
		},
		{
			name: "no start",
			mutate: func(s []*validationv1.StopInput) []*validationv1.StopInput {
				s[0].Kind = commonv1.StopKind_STOP_KIND_VIA
				return s
			},
			wantValid: false,
		},
		{
			name: "duplicate stop id",
			mutate: func(s []*validationv1.StopInput) []*validationv1.StopInput {
				s[1].StopId = s[0].StopId
				return s
			},
			wantValid: false,
		},
		{
			name: "invalid coordinates",
			mutate: func(s []*validationv1.StopInput) []*validationv1.StopInput {
				s[2].Point = &commonv1.LatLon{Lat: 200, Lon: 0}
				return s
			},
			wantValid: false,
		},
		{
			name: "fixed seq conflict",
			mutate: func(s []*validationv1.StopInput) []*validationv1.StopInput {
				s[1].Fixed = true
				s[1].FixedSeq = seqPtr(2)
				s[2].Fixed = true
				s[2].FixedSeq = seqPtr(2)
				return s
			},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.ValidateStops(ctx, &validationv1.ValidateStopsRequest{
				DayId:   "day-" + tt.name,
				Profile: commonv1.Profile_PROFILE_CAR,
				Stops:   tt.mutate(validStopsFixture()),
			})

			require.NoError(t, err)
			require.NotNil(t, resp)
			require.NotNil(t, resp.Result)
			assert.Equal(t, tt.wantValid, resp.Result.IsValid)

			if !tt.wantValid {
				assert.NotEmpty(t, resp.Result.Errors)
			}

			assert.NotNil(t, resp.Metrics)
			assert.Greater(t, resp.Metrics.TotalChecks, int32(0))
		})
	}
}

func TestValidationService_ValidateStops_EmptyDay(t *testing.T) {
	client := SetupValidationClient(t)
	ctx, cancel := testutil.Context(t)
	defer cancel()

	resp, err := client.ValidateStops(ctx, &validationv1.ValidateStopsRequest{
		DayId:   "empty-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   nil,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Result)
	assert.False(t, resp.Result.IsValid)
	assert.NotEmpty(t, resp.Result.Errors)
}

func TestValidationService_Health(t *testing.T) {
	client := SetupValidationClient(t)
	ctx, cancel := testutil.Context(t)
	defer cancel()

	resp, err := client.Health(ctx, &validationv1.HealthRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "SERVING", resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(0))
}
