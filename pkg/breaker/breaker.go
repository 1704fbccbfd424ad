// Package breaker implements a per-key circuit breaker used by the routing
// provider orchestrator to stop calling an adapter that is failing
// consistently, mirroring the host repository's pkg/ratelimit in shape
// (mutex-guarded per-key state, background cleanup goroutine).
package breaker

import (
	"errors"
	"sync"
	"time"
)

// State represents one of the three circuit breaker states.
type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateHalfOpen:
		return "half_open"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// ErrOpen is returned by Allow when the breaker is open (or blocked by a
// rate-limit stamp) for the given key.
var ErrOpen = errors.New("breaker: circuit open")

// Config конфигурация circuit breaker
type Config struct {
	// Failures количество последовательных отказов до перехода closed -> open
	Failures int `koanf:"failures"`

	// Window окно, в пределах которого считаются последовательные отказы
	Window time.Duration `koanf:"window_s"`

	// Cooldown время до перехода open -> half_open
	Cooldown time.Duration `koanf:"cooldown_s"`

	// CleanupInterval интервал очистки состояний неактивных ключей
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// DefaultConfig возвращает конфигурацию по умолчанию (F=5, W=60s, C=30s)
func DefaultConfig() *Config {
	return &Config{
		Failures:        5,
		Window:          60 * time.Second,
		Cooldown:        30 * time.Second,
		CleanupInterval: 5 * time.Minute,
	}
}

type keyState struct {
	state               State
	consecutiveFailures int
	windowStart         time.Time
	openedAt            time.Time
	blockedUntil        time.Time
	lastActivity        time.Time
}

// Breaker circuit breaker с независимым состоянием на ключ (обычно имя
// адаптера провайдера)
type Breaker struct {
	mu     sync.Mutex
	states map[string]*keyState
	config *Config
	stopCh chan struct{}
	closed bool
}

// New создаёт Breaker с заданной конфигурацией
func New(cfg *Config) *Breaker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Failures <= 0 {
		cfg.Failures = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = 60 * time.Second
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	b := &Breaker{
		states: make(map[string]*keyState),
		config: cfg,
		stopCh: make(chan struct{}),
	}

	go b.cleanup()

	return b
}

// Allow сообщает, можно ли выполнять вызов для ключа прямо сейчас. Если
// breaker открыт (или заблокирован по rate-limit), возвращает ErrOpen.
// Вызов Allow на half_open переводит состояние в "пробный" режим: ровно
// один вызывающий получает разрешение попробовать снова, остальные видят
// ErrOpen, пока исход пробного вызова не зафиксирован через RecordSuccess
// или RecordFailure.
func (b *Breaker) Allow(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	st := b.getOrCreate(key, now)
	st.lastActivity = now

	if now.Before(st.blockedUntil) {
		return ErrOpen
	}

	switch st.state {
	case StateOpen:
		if now.Sub(st.openedAt) >= b.config.Cooldown {
			st.state = StateHalfOpen
			return nil
		}
		return ErrOpen
	default:
		return nil
	}
}

// RecordSuccess регистрирует успешный вызов. half_open -> closed; closed
// остаётся closed и сбрасывает окно отказов.
func (b *Breaker) RecordSuccess(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	st := b.getOrCreate(key, now)
	st.lastActivity = now
	st.state = StateClosed
	st.consecutiveFailures = 0
	st.windowStart = time.Time{}
	st.blockedUntil = time.Time{}
}

// RecordFailure регистрирует отказ. closed -> open после Failures отказов
// подряд в пределах Window; half_open -> open немедленно (§4.3).
func (b *Breaker) RecordFailure(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	st := b.getOrCreate(key, now)
	st.lastActivity = now

	if st.state == StateHalfOpen {
		st.state = StateOpen
		st.openedAt = now
		st.consecutiveFailures = b.config.Failures
		return
	}

	if st.windowStart.IsZero() || now.Sub(st.windowStart) > b.config.Window {
		st.windowStart = now
		st.consecutiveFailures = 0
	}
	st.consecutiveFailures++

	if st.consecutiveFailures >= b.config.Failures {
		st.state = StateOpen
		st.openedAt = now
	}
}

// RecordRateLimited registers a rate-limit failure and additionally stamps
// blockedUntil = now + retryAfter, short-circuiting all calls to this key
// regardless of breaker state until the stamp elapses (§4.3).
func (b *Breaker) RecordRateLimited(key string, retryAfter time.Duration) {
	b.RecordFailure(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	st := b.getOrCreate(key, now)
	until := now.Add(retryAfter)
	if until.After(st.blockedUntil) {
		st.blockedUntil = until
	}
}

// State возвращает текущее состояние ключа (для тестов и метрик)
func (b *Breaker) State(key string) State {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	st := b.getOrCreate(key, now)
	if st.state == StateOpen && now.Sub(st.openedAt) >= b.config.Cooldown {
		return StateHalfOpen
	}
	return st.state
}

func (b *Breaker) getOrCreate(key string, now time.Time) *keyState {
	st, ok := b.states[key]
	if !ok {
		st = &keyState{state: StateClosed, lastActivity: now}
		b.states[key] = st
	}
	return st
}

// Close останавливает фоновую очистку
func (b *Breaker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.stopCh)
	return nil
}

func (b *Breaker) cleanup() {
	ticker := time.NewTicker(b.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopCh:
			return
		case <-ticker.C:
			b.doCleanup()
		}
	}
}

func (b *Breaker) doCleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := time.Now().Add(-b.config.CleanupInterval * 2)
	for key, st := range b.states {
		if st.state == StateClosed && st.lastActivity.Before(cutoff) {
			delete(b.states, key)
		}
	}
}
