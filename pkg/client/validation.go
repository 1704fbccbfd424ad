// pkg/client/validation.go
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	validationv1 "logistics/gen/go/logistics/validation/v1"
)

// ValidationClient клиент для validation-svc
type ValidationClient struct {
	conn   *grpc.ClientConn
	client validationv1.ValidationServiceClient
}

// ValidationClientConfig конфигурация клиента
type ValidationClientConfig struct {
	Address    string
	Timeout    time.Duration
	MaxRetries int
	EnableTLS  bool
	CertFile   string
}

// DefaultValidationClientConfig возвращает конфигурацию по умолчанию
func DefaultValidationClientConfig() *ValidationClientConfig {
	return &ValidationClientConfig{
		Address:    "localhost:50054",
		Timeout:    5 * time.Second,
		MaxRetries: 3,
		EnableTLS:  false,
	}
}

// NewValidationClient создаёт нового клиента
func NewValidationClient(cfg *ValidationClientConfig) (*ValidationClient, error) {
	if cfg == nil {
		cfg = DefaultValidationClientConfig()
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to validation service: %w", err)
	}

	return &ValidationClient{
		conn:   conn,
		client: validationv1.NewValidationServiceClient(conn),
	}, nil
}

// Close закрывает соединение
func (c *ValidationClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// ValidateStops проверяет форму точек дня перед оптимизацией маршрута.
func (c *ValidationClient) ValidateStops(ctx context.Context, req *validationv1.ValidateStopsRequest) (*validationv1.ValidateStopsResponse, error) {
	return c.client.ValidateStops(ctx, req)
}
