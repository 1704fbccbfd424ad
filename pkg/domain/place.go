package domain

import "context"

// Place географическая точка с адресом, разделяемая между Stops
type Place struct {
	ID      string
	Name    string
	Address string
	Point   LatLon
	Meta    map[string]string
}

// Validate проверяет координаты точки
func (p *Place) Validate() error {
	if !p.Point.Valid() {
		return ErrInvalidCoords
	}
	return nil
}

// PlaceStore зависимость, создающая или переиспользующая Place по координатам.
// Конкретная реализация (геокодирование, нормализация адреса) внешняя по
// отношению к CORE — см. SPEC_FULL.md §6.
type PlaceStore interface {
	Upsert(ctx context.Context, name string, point LatLon, address string, meta map[string]string) (*Place, error)
}
