package provider

import (
	"context"

	"logistics/pkg/domain"
)

// HaversineAdapter адаптер-фолбэк, работающий только в процессе: расстояние
// по ортодромии, время по таблице скоростей (§4.1). Всегда успешен и никогда
// не подвергается circuit-breaking (§4.3).
type HaversineAdapter struct{}

// NewHaversineAdapter создаёт HaversineAdapter
func NewHaversineAdapter() *HaversineAdapter {
	return &HaversineAdapter{}
}

// Name возвращает имя адаптера для circuit breaker и логирования
func (a *HaversineAdapter) Name() string { return "haversine" }

// ComputeRoute строит маршрут как прямую линию через все точки по порядку,
// с суммарной дистанцией/длительностью по гаверсинусной оценке
func (a *HaversineAdapter) ComputeRoute(_ context.Context, points []domain.LatLon, profile domain.Profile, _ domain.RouteOptions) (*RouteResult, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	legs := make([]domain.Leg, 0, len(points)-1)
	var distKm, durMin float64

	for i := 0; i+1 < len(points); i++ {
		d := domain.HaversineKm(points[i], points[i+1])
		dur := domain.EstimateDurationMin(d, profile)
		distKm += d
		durMin += dur

		ls := domain.NewLineString([]domain.LatLon{points[i], points[i+1]})
		legs = append(legs, domain.Leg{DistanceKm: d, DurationMin: dur, Geometry: &ls})
	}

	return &RouteResult{
		DistanceKm:   distKm,
		DurationMin:  durMin,
		Geometry:     domain.NewLineString(points),
		Legs:         legs,
		ProviderName: a.Name(),
	}, nil
}

// ComputeMatrix строит полную N×N матрицу гаверсинусных оценок
func (a *HaversineAdapter) ComputeMatrix(_ context.Context, points []domain.LatLon, profile domain.Profile, _ domain.Objective) (*MatrixResult, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	n := len(points)
	distance := make([][]float64, n)
	duration := make([][]float64, n)
	for i := range distance {
		distance[i] = make([]float64, n)
		duration[i] = make([]float64, n)
		for j := range distance[i] {
			if i == j {
				continue
			}
			d := domain.HaversineKm(points[i], points[j])
			distance[i][j] = d
			duration[i][j] = domain.EstimateDurationMin(d, profile)
		}
	}

	return &MatrixResult{DistanceKm: distance, DurationMin: duration}, nil
}
