package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/pkg/apperror"
	"logistics/pkg/domain"
)

// haversineMatrixProvider строит матрицу по гаверсинусу, без сети — используется
// только в тестах, чтобы не зависеть от реального адаптера провайдера.
type haversineMatrixProvider struct{}

func (haversineMatrixProvider) ComputeMatrix(_ context.Context, points []domain.LatLon, profile domain.Profile, _ domain.Objective) ([][]float64, [][]float64, error) {
	n := len(points)
	dist := make([][]float64, n)
	dur := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		dur[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				continue
			}
			d := domain.HaversineKm(points[i], points[j])
			dist[i][j] = d
			dur[i][j] = domain.EstimateDurationMin(d, profile)
		}
	}
	return dist, dur, nil
}

func pt(stopID string, lat, lon float64, kind domain.StopKind, fixedSeq *int) domain.RoutePoint {
	return domain.RoutePoint{StopID: stopID, Point: domain.LatLon{Lat: lat, Lon: lon}, Kind: kind, FixedSeq: fixedSeq}
}

func seq(n int) *int { return &n }

func TestOptimize_TrivialPair(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("start", 32.0853, 34.7818, domain.StopKindStart, nil),
			pt("end", 31.7683, 35.2137, domain.StopKindEnd, nil),
		},
		Profile:   domain.ProfileCar,
		Objective: domain.ObjectiveDistance,
	}

	result, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "end"}, result.OrderedStopIDs)
	assert.InDelta(t, 66.0, result.TotalDistanceKm, 15.0)
}

func TestOptimize_FixedViaPreservesPosition(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("A", 50.0, 10.0, domain.StopKindStart, nil),
			pt("B", 50.1, 10.1, domain.StopKindVia, nil),
			pt("C", 50.2, 10.2, domain.StopKindVia, seq(3)),
			pt("D", 50.3, 10.3, domain.StopKindVia, nil),
			pt("E", 50.4, 10.4, domain.StopKindEnd, nil),
		},
		Profile:   domain.ProfileCar,
		Objective: domain.ObjectiveDistance,
	}

	result, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.NoError(t, err)
	require.Len(t, result.OrderedStopIDs, 5)
	assert.Equal(t, "A", result.OrderedStopIDs[0])
	assert.Equal(t, "C", result.OrderedStopIDs[2])
	assert.Equal(t, "E", result.OrderedStopIDs[4])
}

func TestOptimize_Determinism(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("start", 0, 0, domain.StopKindStart, nil),
			pt("via-1", 1, 1, domain.StopKindVia, nil),
			pt("via-2", 2, 0.5, domain.StopKindVia, nil),
			pt("via-3", 0.5, 2, domain.StopKindVia, nil),
			pt("end", 3, 3, domain.StopKindEnd, nil),
		},
		Profile:   domain.ProfileCar,
		Objective: domain.ObjectiveTime,
	}

	first, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.NoError(t, err)
	second, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.NoError(t, err)

	assert.Equal(t, first.OrderedStopIDs, second.OrderedStopIDs)
}

func TestValidate_MissingStart(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("end", 0, 0, domain.StopKindEnd, nil),
		},
	}
	_, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidationMissingStart, apperror.Code(err))
}

func TestValidate_MultipleStart(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("start-1", 0, 0, domain.StopKindStart, nil),
			pt("start-2", 1, 1, domain.StopKindStart, nil),
			pt("end", 2, 2, domain.StopKindEnd, nil),
		},
	}
	_, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidationMultipleStart, apperror.Code(err))
}

func TestValidate_DuplicateID(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("x", 0, 0, domain.StopKindStart, nil),
			pt("x", 1, 1, domain.StopKindEnd, nil),
		},
	}
	_, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidationDuplicateID, apperror.Code(err))
}

func TestValidate_FixedSeqOutOfRange(t *testing.T) {
	in := Input{
		Points: []domain.RoutePoint{
			pt("start", 0, 0, domain.StopKindStart, nil),
			pt("via", 1, 1, domain.StopKindVia, seq(1)),
			pt("end", 2, 2, domain.StopKindEnd, nil),
		},
	}
	_, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidationFixedSeqConflict, apperror.Code(err))
}

func TestOptimize_LargeInputUsesFallback(t *testing.T) {
	points := []domain.RoutePoint{pt("start", 0, 0, domain.StopKindStart, nil)}
	for i := 0; i < 22; i++ {
		points = append(points, pt(string(rune('a'+i)), float64(i)*0.1, float64(i)*0.1, domain.StopKindVia, nil))
	}
	points = append(points, pt("end", 3, 3, domain.StopKindEnd, nil))

	in := Input{Points: points, Profile: domain.ProfileCar, Objective: domain.ObjectiveDistance}

	result, err := Optimize(context.Background(), haversineMatrixProvider{}, in)
	require.NoError(t, err)
	assert.Len(t, result.OrderedStopIDs, len(points))
	assert.Equal(t, "start", result.OrderedStopIDs[0])
	assert.Equal(t, "end", result.OrderedStopIDs[len(points)-1])
}
