// Package routingsvc exposes a constructor for external benchmarks and
// integration tests that need a RoutingService without going through the
// full cmd/main.go wiring.
package routingsvc

import (
	routingv1 "logistics/gen/go/logistics/routing/v1"
	"logistics/services/routing-svc/internal/orchestrator"
	"logistics/services/routing-svc/internal/repository"
	"logistics/services/routing-svc/internal/service"
)

// NewBenchmarkServer создаёт экземпляр сервиса для внешних бенчмарков,
// скрывая внутреннюю структуру реализации за интерфейсом.
func NewBenchmarkServer(orch *orchestrator.Orchestrator, repo repository.RouteVersionRepository) routingv1.RoutingServiceServer {
	return service.NewRoutingService("benchmark", orch, repo, nil)
}
