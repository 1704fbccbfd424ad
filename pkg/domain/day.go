package domain

import "time"

// DayStatus статус дня поездки
type DayStatus string

const (
	DayStatusActive   DayStatus = "active"
	DayStatusInactive DayStatus = "inactive"
	DayStatusDeleted  DayStatus = "deleted"
)

// Day упорядоченная единица Trip
type Day struct {
	ID        string
	TripID    string
	Seq       int
	RestDay   bool
	Status    DayStatus
	DeletedAt *time.Time
}

// Validate проверяет внутренние инварианты дня
func (d *Day) Validate() error {
	if d.Seq <= 0 {
		return ErrInvalidDaySeq
	}
	if (d.Status == DayStatusDeleted) != (d.DeletedAt != nil) {
		return ErrDayStatusMismatch
	}
	return nil
}

// CalculatedDate вычисляет дату дня как trip.StartDate + Seq - 1, если обе
// величины известны
func (d *Day) CalculatedDate(trip *Trip) *time.Time {
	if trip == nil || trip.StartDate == nil {
		return nil
	}
	date := trip.StartDate.AddDate(0, 0, d.Seq-1)
	return &date
}
