package domain

import "time"

// TripStatus статус поездки
type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusArchived  TripStatus = "archived"
)

// Trip контейнер для Days
type Trip struct {
	ID        string
	OwnerID   string
	Title     string
	Slug      string
	StartDate *time.Time
	Timezone  string
	Status    TripStatus
	DeletedAt *time.Time
}

// IsLive проверяет, что поездка не удалена
func (t *Trip) IsLive() bool {
	return t.DeletedAt == nil
}
