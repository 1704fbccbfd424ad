package domain

import "time"

// Leg сегмент между двумя последовательными остановками маршрута
type Leg struct {
	FromStopID  string
	ToStopID    string
	DistanceKm  float64
	DurationMin float64
	Geometry    *LineString
}

// Valid проверяет, что метрики лёга конечны и неотрицательны (§7 INVALID_SEGMENT)
func (l *Leg) Valid() bool {
	return IsFinitePositive(l.DistanceKm) && IsFinitePositive(l.DurationMin)
}

// RouteOptions опции вычисления маршрута
type RouteOptions struct {
	AvoidTolls    bool
	AvoidFerries  bool
	AvoidHighways bool
	Optimize      bool
}

// RouteTotals агрегированные итоги по маршруту
type RouteTotals struct {
	DistanceKm  float64
	DurationMin float64
}

// SumLegs суммирует дистанцию и длительность по набору лёгов (§8 свойство 4)
func SumLegs(legs []Leg) RouteTotals {
	var totals RouteTotals
	for _, l := range legs {
		totals.DistanceKm += l.DistanceKm
		totals.DurationMin += l.DurationMin
	}
	return totals
}

// RouteVersion вычисленный маршрут поверх Day
type RouteVersion struct {
	ID             string
	DayID          string
	VersionNumber  int
	Name           string
	IsActive       bool
	Profile        Profile
	Objective      Objective
	Options        RouteOptions
	OrderedStopIDs []string
	Totals         RouteTotals
	Legs           []Leg
	Geometry       LineString
	Warnings       []string
	ComputedAt     time.Time
	ProviderName   string
}

// AddWarning добавляет предупреждение, если оно ещё не присутствует
func (r *RouteVersion) AddWarning(w string) {
	for _, existing := range r.Warnings {
		if existing == w {
			return
		}
	}
	r.Warnings = append(r.Warnings, w)
}

// RouteVersionSummary облегчённая проекция RouteVersion для списков истории
type RouteVersionSummary struct {
	ID            string
	DayID         string
	VersionNumber int
	Name          string
	IsActive      bool
	Profile       Profile
	Objective     Objective
	Totals        RouteTotals
	ComputedAt    time.Time
}

// PreviewToken опаковая, недолговечная ссылка на вычисленный, но ещё не
// сохранённый маршрут
type PreviewToken struct {
	Token      string
	DayID      string
	ExpiresAt  time.Time
	Route      RouteVersion
	InputsHash string
}

// Expired проверяет истёк ли токен на момент времени now
func (p *PreviewToken) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
