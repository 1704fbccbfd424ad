package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/pkg/domain"
)

func TestHaversineAdapter_ComputeRoute(t *testing.T) {
	a := NewHaversineAdapter()
	points := []domain.LatLon{
		{Lat: 32.0853, Lon: 34.7818},
		{Lat: 31.7683, Lon: 35.2137},
	}

	result, err := a.ComputeRoute(context.Background(), points, domain.ProfileCar, domain.RouteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DistanceKm <= 0 {
		t.Error("expected positive distance")
	}
	if len(result.Legs) != 1 {
		t.Errorf("expected 1 leg, got %d", len(result.Legs))
	}
}

func TestHaversineAdapter_RejectsMotorcycle(t *testing.T) {
	a := NewHaversineAdapter()
	points := []domain.LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}

	_, err := a.ComputeRoute(context.Background(), points, domain.ProfileMotorcycle, domain.RouteOptions{})
	if err == nil {
		t.Fatal("expected error for unsupported profile")
	}
}

func TestHaversineAdapter_ComputeMatrix_DiagonalZero(t *testing.T) {
	a := NewHaversineAdapter()
	points := []domain.LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}, {Lat: 2, Lon: 0.5}}

	result, err := a.ComputeMatrix(context.Background(), points, domain.ProfileCar, domain.ObjectiveDistance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range points {
		if result.DistanceKm[i][i] != 0 {
			t.Errorf("diagonal[%d][%d] = %v, want 0", i, i, result.DistanceKm[i][i])
		}
	}
	if result.DistanceKm[0][1] <= 0 {
		t.Error("expected positive off-diagonal distance")
	}
}

func TestHTTPAdapter_ComputeRoute_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body routeRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Profile != "car" {
			t.Errorf("profile = %s, want car", body.Profile)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(routeResponseBody{
			DistanceM: 15000,
			TimeMs:    1200000,
			Points:    [][2]float64{{34.78, 32.08}, {35.21, 31.76}},
		})
	}))
	defer server.Close()

	adapter := NewCloudAdapter(server.URL, "test-key", 5*time.Second)
	points := []domain.LatLon{{Lat: 32.0853, Lon: 34.7818}, {Lat: 31.7683, Lon: 35.2137}}

	result, err := adapter.ComputeRoute(context.Background(), points, domain.ProfileCar, domain.RouteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DistanceKm != 15 {
		t.Errorf("DistanceKm = %v, want 15", result.DistanceKm)
	}
	if result.DurationMin != 20 {
		t.Errorf("DurationMin = %v, want 20", result.DurationMin)
	}
}

func TestHTTPAdapter_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "12")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := NewCloudAdapter(server.URL, "test-key", 5*time.Second)
	points := []domain.LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}

	_, err := adapter.ComputeRoute(context.Background(), points, domain.ProfileCar, domain.RouteOptions{})
	if err == nil {
		t.Fatal("expected rate-limit error")
	}
}

func TestHTTPAdapter_Upstream4xxTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid points"))
	}))
	defer server.Close()

	adapter := NewCloudAdapter(server.URL, "test-key", 5*time.Second)
	points := []domain.LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}

	_, err := adapter.ComputeRoute(context.Background(), points, domain.ProfileCar, domain.RouteOptions{})
	if err == nil {
		t.Fatal("expected terminal 4xx error")
	}
}

func TestHTTPAdapter_ComputeMatrix_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(matrixResponseBody{
			Distances: [][]float64{{0, 10000}, {10000, 0}},
			Times:     [][]float64{{0, 600000}, {600000, 0}},
		})
	}))
	defer server.Close()

	adapter := NewSelfHostAdapter(server.URL, 5*time.Second)
	points := []domain.LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}

	result, err := adapter.ComputeMatrix(context.Background(), points, domain.ProfileCar, domain.ObjectiveDistance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DistanceKm[0][1] != 10 {
		t.Errorf("DistanceKm[0][1] = %v, want 10", result.DistanceKm[0][1])
	}
	if result.DurationMin[0][1] != 10 {
		t.Errorf("DurationMin[0][1] = %v, want 10", result.DurationMin[0][1])
	}
}
