package domain

// LineString геометрия маршрута в формате GeoJSON: список [lon, lat] вершин
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// NewLineString строит LineString из последовательности точек (lon, lat)
func NewLineString(points []LatLon) LineString {
	coords := make([][2]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, [2]float64{p.Lon, p.Lat})
	}
	return LineString{Type: "LineString", Coordinates: coords}
}

// StitchLineStrings склеивает геометрии последовательных лёгов, удаляя
// повторяющуюся граничную вершину между соседними сегментами (§8 свойство 5).
func StitchLineStrings(legs []LineString) LineString {
	result := LineString{Type: "LineString"}
	for i, leg := range legs {
		coords := leg.Coordinates
		if i > 0 && len(coords) > 0 && len(result.Coordinates) > 0 {
			last := result.Coordinates[len(result.Coordinates)-1]
			if last == coords[0] {
				coords = coords[1:]
			}
		}
		result.Coordinates = append(result.Coordinates, coords...)
	}
	return result
}
