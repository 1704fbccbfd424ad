// Package repository implements the Route Version Store: persistence of
// computed RouteVersion rows and the preview -> commit -> active lifecycle.
package repository

import (
	"context"
	"errors"
	"time"
)

// Стандартные ошибки
var (
	ErrVersionNotFound = errors.New("route version not found")
	ErrAccessDenied    = errors.New("access denied")
)

// RouteVersion строка хранилища версий маршрута одного Day
type RouteVersion struct {
	ID               string
	DayID            string
	VersionNumber    int
	Name             string
	IsActive         bool
	Profile          string
	Objective        string
	OptionsData      []byte // JSON(domain.RouteOptions)
	OrderedStopIDs   []string
	TotalDistanceKm  float64
	TotalDurationMin float64
	LegsData         []byte // JSON([]domain.Leg)
	GeometryData     []byte // JSON(domain.LineString)
	Warnings         []string
	ProviderName     string
	ComputedAt       time.Time
	CreatedAt        time.Time
}

// RouteVersionSummary облегчённая проекция для списков
type RouteVersionSummary struct {
	ID               string
	DayID            string
	VersionNumber    int
	Name             string
	IsActive         bool
	Profile          string
	Objective        string
	TotalDistanceKm  float64
	TotalDurationMin float64
	ComputedAt       time.Time
}

// ListFilter фильтры для списка версий
type ListFilter struct {
	Profile      string
	ActiveOnly   bool
	ProviderName string
}

// SortOrder порядок сортировки
type SortOrder string

const (
	SortByVersionDesc  SortOrder = "version_desc"
	SortByVersionAsc   SortOrder = "version_asc"
	SortByComputedDesc SortOrder = "computed_desc"
)

// ListOptions опции для списка версий
type ListOptions struct {
	Limit  int
	Offset int
	Filter *ListFilter
	Sort   SortOrder
}

// RouteVersionRepository интерфейс хранилища версий маршрута
type RouteVersionRepository interface {
	// Create сохраняет новую версию, присваивая ей следующий порядковый
	// номер в рамках Day атомарно (§8 S6 — конкурентный commit-race).
	Create(ctx context.Context, dayID string, v *RouteVersion) error

	GetByID(ctx context.Context, id string) (*RouteVersion, error)

	// GetActive возвращает активную версию Day, если она есть.
	GetActive(ctx context.Context, dayID string) (*RouteVersion, error)

	List(ctx context.Context, dayID string, opts *ListOptions) ([]*RouteVersionSummary, int64, error)

	// SetActive переключает активную версию Day, снимая флаг с
	// предыдущей активной версии в той же транзакции.
	SetActive(ctx context.Context, dayID, versionID string) (*RouteVersion, error)
}
