// Package provider реализует адаптеры провайдеров маршрутизации
// (SPEC_FULL.md §4.1): общий интерфейс Adapter и три его реализации —
// cloud, self-host и haversine.
package provider

import (
	"context"

	"logistics/pkg/domain"
)

// RouteResult результат вычисления одного маршрута через адаптер
type RouteResult struct {
	DistanceKm   float64
	DurationMin  float64
	Geometry     domain.LineString
	Legs         []domain.Leg
	Warnings     []string
	ProviderName string
}

// MatrixResult результат вычисления полной N×N матрицы
type MatrixResult struct {
	DistanceKm  [][]float64
	DurationMin [][]float64
}

// Adapter вычисляет маршруты и матрицы расстояний через конкретного
// провайдера (облачный, self-host или haversine-оценка)
type Adapter interface {
	Name() string
	ComputeRoute(ctx context.Context, points []domain.LatLon, profile domain.Profile, opts domain.RouteOptions) (*RouteResult, error)
	ComputeMatrix(ctx context.Context, points []domain.LatLon, profile domain.Profile, objective domain.Objective) (*MatrixResult, error)
}

// validateProfile отклоняет motorcycle на границе адаптера (§4.1, §9)
func validateProfile(profile domain.Profile) error {
	if !profile.Supported() {
		return errUnsupportedProfile(profile)
	}
	return nil
}
