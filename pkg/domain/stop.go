package domain

import "time"

// StopKind роль остановки в рамках Day
type StopKind string

const (
	StopKindStart StopKind = "start"
	StopKindVia   StopKind = "via"
	StopKindEnd   StopKind = "end"
)

// Valid проверяет, что StopKind входит в допустимое множество
func (k StopKind) Valid() bool {
	switch k {
	case StopKindStart, StopKindVia, StopKindEnd:
		return true
	default:
		return false
	}
}

// Stop визит в рамках Day
type Stop struct {
	ID              string
	DayID           string
	TripID          string
	PlaceID         string
	Seq             int
	Kind            StopKind
	Fixed           bool
	Notes           string
	StopType        string
	ArrivalTime     *time.Time
	DepartureTime   *time.Time
	DurationMinutes int
	Priority        int
	DeletedAt       *time.Time
}

// RoutePoint вход оптимизатора: точка, помеченная ролью и, опционально,
// зафиксированной позицией. Строится Breakdown Service из Stop+Place.
type RoutePoint struct {
	StopID   string
	Point    LatLon
	Kind     StopKind
	FixedSeq *int // 1-based позиция, если зафиксирована
}

// IsFixed сообщает, зафиксирована ли точка на своей позиции при оптимизации
func (p RoutePoint) IsFixed() bool {
	return p.Kind == StopKindStart || p.Kind == StopKindEnd || p.FixedSeq != nil
}
