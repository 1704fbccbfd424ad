package services_benchmark

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	commonv1 "logistics/gen/go/logistics/common/v1"
	validationv1 "logistics/gen/go/logistics/validation/v1"
	validationsvc "logistics/services/validation-svc"
)

const bufSize = 1024 * 1024

var (
	validationListener *bufconn.Listener
	validationClient   validationv1.ValidationServiceClient
)

func init() {
	validationListener = bufconn.Listen(bufSize)

	server := grpc.NewServer()
	svc := validationsvc.NewBenchmarkServer()
	validationv1.RegisterValidationServiceServer(server, svc)

	go func() {
		if err := server.Serve(validationListener); err != nil {
			log.Fatalf("Validation server exited with error: %v", err)
		}
	}()

	conn, err := grpc.NewClient(
		"passthrough://bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return validationListener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("Failed to dial bufnet: %v", err)
	}

	validationClient = validationv1.NewValidationServiceClient(conn)
}

// =============================================================================
// STOP GENERATORS
// =============================================================================

func generateValidStops(n int) []*validationv1.StopInput {
	r := rand.New(rand.NewSource(42))
	stops := make([]*validationv1.StopInput, n)

	for i := 0; i < n; i++ {
		kind := commonv1.StopKind_STOP_KIND_VIA
		if i == 0 {
			kind = commonv1.StopKind_STOP_KIND_START
		} else if i == n-1 {
			kind = commonv1.StopKind_STOP_KIND_END
		}

		stops[i] = &validationv1.StopInput{
			StopId: fmt.Sprintf("stop-%d", i),
			Point: &commonv1.LatLon{
				Lat: 41.0 + r.Float64(),
				Lon: 29.0 + r.Float64(),
			},
			Kind: kind,
		}
	}

	return stops
}

func generateInvalidStops(n int, invalidationType string) []*validationv1.StopInput {
	stops := generateValidStops(n)

	switch invalidationType {
	case "no_start":
		stops[0].Kind = commonv1.StopKind_STOP_KIND_VIA
	case "duplicate_id":
		if len(stops) > 1 {
			stops[1].StopId = stops[0].StopId
		}
	case "bad_coords":
		stops[len(stops)/2].Point = &commonv1.LatLon{Lat: 200, Lon: 200}
	case "no_stops":
		stops = nil
	}

	return stops
}

// =============================================================================
// VALIDATE STOPS BENCHMARKS
// =============================================================================

func BenchmarkValidation_ValidateStops_Small(b *testing.B) {
	stops := generateValidStops(5)
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := validationClient.ValidateStops(ctx, req)
		if err != nil {
			b.Fatalf("ValidateStops failed: %v", err)
		}
	}
}

func BenchmarkValidation_ValidateStops_Medium(b *testing.B) {
	stops := generateValidStops(25)
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := validationClient.ValidateStops(ctx, req)
		if err != nil {
			b.Fatalf("ValidateStops failed: %v", err)
		}
	}
}

func BenchmarkValidation_ValidateStops_Large(b *testing.B) {
	stops := generateValidStops(200)
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := validationClient.ValidateStops(ctx, req)
		if err != nil {
			b.Fatalf("ValidateStops failed: %v", err)
		}
	}
}

// =============================================================================
// INVALID STOPS BENCHMARKS
// =============================================================================

func BenchmarkValidation_InvalidStops_NoStart(b *testing.B) {
	stops := generateInvalidStops(20, "no_start")
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = validationClient.ValidateStops(ctx, req)
	}
}

func BenchmarkValidation_InvalidStops_DuplicateID(b *testing.B) {
	stops := generateInvalidStops(20, "duplicate_id")
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = validationClient.ValidateStops(ctx, req)
	}
}

func BenchmarkValidation_InvalidStops_BadCoords(b *testing.B) {
	stops := generateInvalidStops(20, "bad_coords")
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = validationClient.ValidateStops(ctx, req)
	}
}

// =============================================================================
// SCALABILITY BENCHMARKS
// =============================================================================

func BenchmarkValidation_Scalability_ValidateStops(b *testing.B) {
	sizes := []int{5, 25, 50, 100, 200}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("N%d", n), func(b *testing.B) {
			stops := generateValidStops(n)
			ctx := context.Background()
			req := &validationv1.ValidateStopsRequest{
				DayId:   "bench-day",
				Profile: commonv1.Profile_PROFILE_CAR,
				Stops:   stops,
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = validationClient.ValidateStops(ctx, req)
			}
		})
	}
}

// =============================================================================
// PARALLEL BENCHMARKS
// =============================================================================

func BenchmarkValidation_Parallel_ValidateStops(b *testing.B) {
	stops := generateValidStops(25)
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := validationClient.ValidateStops(ctx, req)
			if err != nil {
				b.Errorf("ValidateStops failed: %v", err)
			}
		}
	})
}

// =============================================================================
// MEMORY BENCHMARKS
// =============================================================================

func BenchmarkValidation_Memory_ValidateStops(b *testing.B) {
	stops := generateValidStops(200)
	ctx := context.Background()
	req := &validationv1.ValidateStopsRequest{
		DayId:   "bench-day",
		Profile: commonv1.Profile_PROFILE_CAR,
		Stops:   stops,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = validationClient.ValidateStops(ctx, req)
	}
}

// =============================================================================
// HEALTH BENCHMARK
// =============================================================================

func BenchmarkValidation_Health(b *testing.B) {
	ctx := context.Background()
	req := &validationv1.HealthRequest{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := validationClient.Health(ctx, req)
		if err != nil {
			b.Fatalf("Health failed: %v", err)
		}
	}
}
