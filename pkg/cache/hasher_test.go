package cache

import (
	"testing"

	"logistics/pkg/domain"
)

func seqp(v int) *int { return &v }

func TestStopsHash(t *testing.T) {
	t.Run("empty points", func(t *testing.T) {
		hash := StopsHash(nil)
		if hash != "" {
			t.Errorf("StopsHash(nil) = %v, want empty string", hash)
		}
	})

	t.Run("same points produce same hash", func(t *testing.T) {
		points := []domain.RoutePoint{
			{StopID: "start", Point: domain.LatLon{Lat: 41.0, Lon: 29.0}, Kind: domain.StopKindStart, FixedSeq: seqp(1)},
			{StopID: "via-1", Point: domain.LatLon{Lat: 41.1, Lon: 29.1}, Kind: domain.StopKindVia},
			{StopID: "end", Point: domain.LatLon{Lat: 41.2, Lon: 29.2}, Kind: domain.StopKindEnd},
		}

		hash1 := StopsHash(points)
		hash2 := StopsHash(points)

		if hash1 != hash2 {
			t.Errorf("same points should produce same hash: %v != %v", hash1, hash2)
		}
	})

	t.Run("different points produce different hashes", func(t *testing.T) {
		p1 := []domain.RoutePoint{
			{StopID: "start", Point: domain.LatLon{Lat: 41.0, Lon: 29.0}, Kind: domain.StopKindStart},
			{StopID: "end", Point: domain.LatLon{Lat: 41.2, Lon: 29.2}, Kind: domain.StopKindEnd},
		}
		p2 := []domain.RoutePoint{
			{StopID: "start", Point: domain.LatLon{Lat: 41.0, Lon: 29.0}, Kind: domain.StopKindStart},
			{StopID: "end", Point: domain.LatLon{Lat: 50.0, Lon: 10.0}, Kind: domain.StopKindEnd}, // different location
		}

		hash1 := StopsHash(p1)
		hash2 := StopsHash(p2)

		if hash1 == hash2 {
			t.Error("different points should produce different hashes")
		}
	})

	t.Run("point order matters", func(t *testing.T) {
		p1 := []domain.RoutePoint{
			{StopID: "a", Point: domain.LatLon{Lat: 1, Lon: 1}, Kind: domain.StopKindVia},
			{StopID: "b", Point: domain.LatLon{Lat: 2, Lon: 2}, Kind: domain.StopKindVia},
		}
		p2 := []domain.RoutePoint{
			{StopID: "b", Point: domain.LatLon{Lat: 2, Lon: 2}, Kind: domain.StopKindVia},
			{StopID: "a", Point: domain.LatLon{Lat: 1, Lon: 1}, Kind: domain.StopKindVia},
		}

		hash1 := StopsHash(p1)
		hash2 := StopsHash(p2)

		if hash1 == hash2 {
			t.Error("point order should affect the hash: positions are semantically meaningful")
		}
	})
}

func TestQuickHash(t *testing.T) {
	data := []byte("test data")
	hash := QuickHash(data)

	if len(hash) != 64 { // SHA256 hex = 64 chars
		t.Errorf("QuickHash length = %d, want 64", len(hash))
	}

	// Same data should produce same hash
	hash2 := QuickHash(data)
	if hash != hash2 {
		t.Error("same data should produce same hash")
	}
}

func TestShortHash(t *testing.T) {
	data := []byte("test data")
	hash := ShortHash(data)

	if len(hash) != 16 {
		t.Errorf("ShortHash length = %d, want 16", len(hash))
	}
}
