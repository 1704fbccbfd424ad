package v1_test

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	auditv1 "logistics/gen/go/logistics/audit/v1"
	routingv1 "logistics/gen/go/logistics/routing/v1"
	validationv1 "logistics/gen/go/logistics/validation/v1"
	"logistics/tests/integration/testutil"
)

// Service addresses (environment variables)
const (
	EnvAuditAddr      = "AUDIT_SVC_ADDR"
	EnvRoutingAddr    = "ROUTING_SVC_ADDR"
	EnvValidationAddr = "VALIDATION_SVC_ADDR"

	DefaultAuditAddr      = "localhost:50057"
	DefaultRoutingAddr    = "localhost:50051"
	DefaultValidationAddr = "localhost:50052"
)

// TestClients holds all gRPC clients for testing
type TestClients struct {
	Audit      auditv1.AuditServiceClient
	Routing    routingv1.RoutingServiceClient
	Validation validationv1.ValidationServiceClient

	conns []*grpc.ClientConn
}

// Close closes all connections
func (tc *TestClients) Close() {
	for _, conn := range tc.conns {
		if conn != nil {
			conn.Close()
		}
	}
}

// dialService creates a gRPC connection to a service
func dialService(t *testing.T, addr string) *grpc.ClientConn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", addr, err)
	}

	return conn
}

// SetupAuditClient creates audit client
func SetupAuditClient(t *testing.T) auditv1.AuditServiceClient {
	t.Helper()
	addr := testutil.RequireService(t, EnvAuditAddr, DefaultAuditAddr)
	conn := dialService(t, addr)
	t.Cleanup(func() { conn.Close() })
	return auditv1.NewAuditServiceClient(conn)
}

// SetupRoutingClient creates routing client
func SetupRoutingClient(t *testing.T) routingv1.RoutingServiceClient {
	t.Helper()
	addr := testutil.RequireService(t, EnvRoutingAddr, DefaultRoutingAddr)
	conn := dialService(t, addr)
	t.Cleanup(func() { conn.Close() })
	return routingv1.NewRoutingServiceClient(conn)
}

// SetupValidationClient creates validation client
func SetupValidationClient(t *testing.T) validationv1.ValidationServiceClient {
	t.Helper()
	addr := testutil.RequireService(t, EnvValidationAddr, DefaultValidationAddr)
	conn := dialService(t, addr)
	t.Cleanup(func() { conn.Close() })
	return validationv1.NewValidationServiceClient(conn)
}
