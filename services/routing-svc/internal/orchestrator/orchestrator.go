// Package orchestrator выбирает адаптер провайдера, применяет политику
// надёжности (circuit breaker, экспоненциальный backoff) и дедуплицирует
// параллельные вычисления одной и той же матрицы (SPEC_FULL.md §4.3).
package orchestrator

import (
	"context"
	"math/rand"
	"time"

	"logistics/pkg/apperror"
	"logistics/pkg/breaker"
	"logistics/pkg/cache"
	"logistics/pkg/domain"
	"logistics/services/routing-svc/internal/provider"
)

// Mode выбирает, какие сетевые адаптеры оркестратор вправе использовать
type Mode string

const (
	ModeCloud                    Mode = "cloud"
	ModeSelfHost                 Mode = "selfhost"
	ModeCloudWithSelfHostFallback Mode = "cloud-with-selfhost-fallback"
)

// BackoffConfig параметры экспоненциального backoff с джиттером (§4.3)
type BackoffConfig struct {
	BaseDelay   time.Duration
	Factor      float64
	JitterFrac  float64
	MaxDelay    time.Duration
	MaxAttempts int
}

// DefaultBackoffConfig возвращает параметры backoff по умолчанию (base=500ms, factor=2, attempts=3)
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		BaseDelay:   500 * time.Millisecond,
		Factor:      2.0,
		JitterFrac:  0.2,
		MaxDelay:    10 * time.Second,
		MaxAttempts: 3,
	}
}

// Orchestrator выбирает адаптер, оборачивает вызовы circuit breaker'ом и
// backoff'ом, деградирует на Haversine при исчерпании сетевых вариантов, и
// кэширует вычисленные матрицы (§4.3)
type Orchestrator struct {
	mode           Mode
	useCloudMatrix bool

	cloud    provider.Adapter
	selfHost provider.Adapter
	fallback provider.Adapter

	breaker *breaker.Breaker
	backoff BackoffConfig
	matrix  *cache.MatrixCache
}

// Config конфигурация для построения Orchestrator
type Config struct {
	Mode           Mode
	UseCloudMatrix bool
	Cloud          provider.Adapter // может быть nil, если mode не использует cloud
	SelfHost       provider.Adapter // может быть nil, если mode не использует selfhost
	Breaker        *breaker.Breaker
	Backoff        BackoffConfig
	MatrixCache    *cache.MatrixCache
}

// New создаёт Orchestrator по конфигурации
func New(cfg Config) *Orchestrator {
	if cfg.Breaker == nil {
		cfg.Breaker = breaker.New(nil)
	}
	if cfg.Backoff.MaxAttempts == 0 {
		cfg.Backoff = DefaultBackoffConfig()
	}
	return &Orchestrator{
		mode:           cfg.Mode,
		useCloudMatrix: cfg.UseCloudMatrix,
		cloud:          cfg.Cloud,
		selfHost:       cfg.SelfHost,
		fallback:       provider.NewHaversineAdapter(),
		breaker:        cfg.Breaker,
		backoff:        cfg.Backoff,
		matrix:         cfg.MatrixCache,
	}
}

// routeAdapterChain возвращает адаптеры для compute_route в порядке
// предпочтения по режиму (§4.3 Selection)
func (o *Orchestrator) routeAdapterChain() []provider.Adapter {
	switch o.mode {
	case ModeCloud:
		return []provider.Adapter{o.cloud}
	case ModeSelfHost:
		return []provider.Adapter{o.selfHost}
	case ModeCloudWithSelfHostFallback:
		return []provider.Adapter{o.cloud, o.selfHost}
	default:
		return nil
	}
}

// matrixAdapterChain аналогично routeAdapterChain, но учитывает use_cloud_matrix (§4.3)
func (o *Orchestrator) matrixAdapterChain() []provider.Adapter {
	if o.useCloudMatrix && o.cloud != nil {
		return []provider.Adapter{o.cloud}
	}
	return o.routeAdapterChain()
}

// ComputeRoute вычисляет один маршрут, пробуя сетевые адаптеры по цепочке
// режима с circuit breaker и backoff, деградируя на Haversine при исчерпании (§4.3)
func (o *Orchestrator) ComputeRoute(ctx context.Context, points []domain.LatLon, profile domain.Profile, opts domain.RouteOptions) (*provider.RouteResult, error) {
	if !profile.Supported() {
		return nil, apperror.NewWithField(apperror.CodeValidationUnsupportedProfile,
			"profile is not supported by routing adapters", "profile")
	}

	chain := o.routeAdapterChain()

	for _, adapter := range chain {
		if adapter == nil {
			continue
		}
		result, err := callWithPolicy(o, ctx, adapter, func(ctx context.Context) (*provider.RouteResult, error) {
			return adapter.ComputeRoute(ctx, points, profile, opts)
		})
		if err == nil {
			return result, nil
		}
		if apperror.Code(err) == apperror.CodeValidationUnsupportedProfile {
			return nil, err
		}
	}

	result, err := o.fallback.ComputeRoute(ctx, points, profile, opts)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, "fallback=haversine")
	return result, nil
}

// ComputeMatrix implementa optimizer.MatrixProvider: возвращает матрицы из
// кэша, либо вычисляет их ровно один раз на fingerprint через singleflight,
// деградируя на Haversine при исчерпании сетевых адаптеров (§3, §4.3)
func (o *Orchestrator) ComputeMatrix(ctx context.Context, points []domain.LatLon, profile domain.Profile, objective domain.Objective) ([][]float64, [][]float64, error) {
	if !profile.Supported() {
		return nil, nil, apperror.NewWithField(apperror.CodeValidationUnsupportedProfile,
			"profile is not supported by routing adapters", "profile")
	}

	if o.matrix == nil {
		result, err := o.computeMatrixUncached(ctx, points, profile, objective)
		if err != nil {
			return nil, nil, err
		}
		return result.DistanceKm, result.DurationMin, nil
	}

	fingerprint := cache.MatrixFingerprint(points, profile, objective)
	entry, err := o.matrix.GetOrCompute(ctx, fingerprint, func(ctx context.Context) (*cache.MatrixEntry, error) {
		result, err := o.computeMatrixUncached(ctx, points, profile, objective)
		if err != nil {
			return nil, err
		}
		return &cache.MatrixEntry{DistanceKm: result.DistanceKm, DurationMin: result.DurationMin}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entry.DistanceKm, entry.DurationMin, nil
}

// computeMatrixUncached пробует сетевые адаптеры цепочки, деградируя на Haversine
func (o *Orchestrator) computeMatrixUncached(ctx context.Context, points []domain.LatLon, profile domain.Profile, objective domain.Objective) (*provider.MatrixResult, error) {
	chain := o.matrixAdapterChain()

	for _, adapter := range chain {
		if adapter == nil {
			continue
		}
		result, err := callWithPolicy(o, ctx, adapter, func(ctx context.Context) (*provider.MatrixResult, error) {
			return adapter.ComputeMatrix(ctx, points, profile, objective)
		})
		if err == nil {
			return result, nil
		}
		if apperror.Code(err) == apperror.CodeValidationUnsupportedProfile {
			return nil, err
		}
	}

	return o.fallback.ComputeMatrix(ctx, points, profile, objective)
}

// callWithPolicy оборачивает один вызов адаптера circuit breaker'ом и
// экспоненциальным backoff'ом с джиттером; Upstream4xx терминальна (§4.3)
func callWithPolicy[T any](o *Orchestrator, ctx context.Context, adapter provider.Adapter, call func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	key := adapter.Name()

	delay := o.backoff.BaseDelay
	var lastErr error

	for attempt := 0; attempt < o.backoff.MaxAttempts; attempt++ {
		if err := o.breaker.Allow(key); err != nil {
			return zero, err
		}

		result, err := call(ctx)
		if err == nil {
			o.breaker.RecordSuccess(key)
			return result, nil
		}
		lastErr = err

		code := apperror.Code(err)
		if code == apperror.CodeProviderRateLimited {
			retryAfter, _ := apperror.RetryAfterSeconds(err)
			o.breaker.RecordRateLimited(key, time.Duration(retryAfter)*time.Second)
		} else {
			o.breaker.RecordFailure(key)
		}

		if !retryable(code) {
			return zero, err
		}
		if attempt == o.backoff.MaxAttempts-1 {
			break
		}

		wait := jitter(delay, o.backoff.JitterFrac)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * o.backoff.Factor)
		if o.backoff.MaxDelay > 0 && delay > o.backoff.MaxDelay {
			delay = o.backoff.MaxDelay
		}
	}

	return zero, lastErr
}

// retryable сообщает, допускает ли код ошибки повторную попытку (§4.3:
// RateLimited и Upstream5xx повторяемы, Upstream4xx терминальна)
func retryable(code apperror.ErrorCode) bool {
	switch code {
	case apperror.CodeProviderRateLimited, apperror.CodeProviderTimeout,
		apperror.CodeProviderNetwork, apperror.CodeProviderUpstream:
		return true
	default:
		return false
	}
}

// jitter добавляет случайное отклонение ±frac к base
func jitter(base time.Duration, frac float64) time.Duration {
	if frac <= 0 {
		return base
	}
	delta := (rand.Float64()*2 - 1) * frac
	return time.Duration(float64(base) * (1 + delta))
}
