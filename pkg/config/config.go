// pkg/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config - главная структура конфигурации
type Config struct {
	App       AppConfig       `koanf:"app"`
	GRPC      GRPCConfig      `koanf:"grpc"`
	HTTP      HTTPConfig      `koanf:"http"`
	Log       LogConfig       `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Tracing   TracingConfig   `koanf:"tracing"`
	Services  ServicesConfig  `koanf:"services"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Audit     AuditConfig     `koanf:"audit"`
	Swagger   SwaggerConfig   `koanf:"swagger"`
	Retry     RetryConfig     `koanf:"retry"`
	Routing   RoutingConfig   `koanf:"routing"`
}

// AppConfig - общие настройки приложения
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
	Debug       bool   `koanf:"debug"`
}

// GRPCConfig - настройки gRPC сервера
type GRPCConfig struct {
	Port              int             `koanf:"port"`
	MaxRecvMsgSize    int             `koanf:"max_recv_msg_size"` // bytes
	MaxSendMsgSize    int             `koanf:"max_send_msg_size"` // bytes
	MaxConcurrentConn int             `koanf:"max_concurrent_conn"`
	KeepAlive         KeepAliveConfig `koanf:"keepalive"`
	TLS               TLSConfig       `koanf:"tls"`
}

// KeepAliveConfig - настройки keep-alive
type KeepAliveConfig struct {
	MaxConnectionIdle     time.Duration `koanf:"max_connection_idle"`
	MaxConnectionAge      time.Duration `koanf:"max_connection_age"`
	MaxConnectionAgeGrace time.Duration `koanf:"max_connection_age_grace"`
	Time                  time.Duration `koanf:"time"`
	Timeout               time.Duration `koanf:"timeout"`
}

// TLSConfig - настройки TLS
type TLSConfig struct {
	Enabled  bool   `koanf:"enabled"`
	CertFile string `koanf:"cert_file"`
	KeyFile  string `koanf:"key_file"`
	CAFile   string `koanf:"ca_file"`
}

// HTTPConfig - настройки HTTP сервера (для gateway)
type HTTPConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORS            CORSConfig    `koanf:"cors"`
}

// CORSConfig - настройки CORS
type CORSConfig struct {
	Enabled          bool     `koanf:"enabled"`
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`   // путь к файлу логов
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"` // количество бэкапов
	MaxAge     int    `koanf:"max_age"`     // дней
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig - настройки Prometheus метрик
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Port      int    `koanf:"port"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// TracingConfig - настройки OpenTelemetry
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
}

// ServicesConfig - адреса других сервисов
type ServicesConfig struct {
	Routing    ServiceEndpoint `koanf:"routing"`
	Validation ServiceEndpoint `koanf:"validation"`
	Audit      ServiceEndpoint `koanf:"audit"`
}

// ServiceEndpoint - конфигурация подключения к сервису
type ServiceEndpoint struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	MaxRetries      int           `koanf:"max_retries"`
	RetryBackoff    time.Duration `koanf:"retry_backoff"`
	TLS             bool          `koanf:"tls"`
	LoadBalancing   string        `koanf:"load_balancing"` // round_robin, pick_first
	HealthCheckPath string        `koanf:"health_check_path"`
}

// Address возвращает полный адрес сервиса
func (s ServiceEndpoint) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig - настройки базы данных
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"` // postgres, mysql, sqlite
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Database        string        `koanf:"database"`
	Username        string        `koanf:"username"`
	Password        string        `koanf:"password"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	MigrationsPath  string        `koanf:"migrations_path"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// DSN возвращает строку подключения
func (d DatabaseConfig) DSN() string {
	switch strings.ToLower(d.Driver) {
	case "postgres", "postgresql":
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.Username, d.Password, d.Database, d.SSLMode,
		)
	case "mysql":
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true",
			d.Username, d.Password, d.Host, d.Port, d.Database,
		)
	case "sqlite":
		return d.Database
	default:
		return ""
	}
}

// CacheConfig - настройки кэширования
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Driver     string        `koanf:"driver"` // redis, memory
	Host       string        `koanf:"host"`
	Port       int           `koanf:"port"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db"`
	DefaultTTL time.Duration `koanf:"default_ttl"`
	MaxEntries int           `koanf:"max_entries"` // для in-memory
}

// Address возвращает адрес кэша
func (c CacheConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig конфигурация rate limiting
type RateLimitConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Requests        int           `koanf:"requests"`
	Window          time.Duration `koanf:"window"`
	Strategy        string        `koanf:"strategy"`
	Backend         string        `koanf:"backend"`
	BurstSize       int           `koanf:"burst_size"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	RedisAddr       string        `koanf:"redis_addr"`
}

// AuditConfig конфигурация аудит лога
type AuditConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Backend         string        `koanf:"backend"`
	FilePath        string        `koanf:"file_path"`
	BufferSize      int           `koanf:"buffer_size"`
	FlushPeriod     time.Duration `koanf:"flush_period"`
	ExcludeMethods  []string      `koanf:"exclude_methods"`
	IncludeRequest  bool          `koanf:"include_request"`
	IncludeResponse bool          `koanf:"include_response"`
}

// SwaggerConfig конфигурация Swagger UI
type SwaggerConfig struct {
	Enabled bool   `koanf:"enabled"`
	Port    int    `koanf:"port"`
	Title   string `koanf:"title"`
}

// RetryConfig конфигурация retry
type RetryConfig struct {
	MaxAttempts       int           `koanf:"max_attempts"`
	InitialBackoff    time.Duration `koanf:"initial_backoff"`
	MaxBackoff        time.Duration `koanf:"max_backoff"`
	BackoffMultiplier float64       `koanf:"backoff_multiplier"`
}

// RoutingConfig конфигурация routing-svc: выбор провайдера, circuit breaker,
// backoff и бюджеты Day-Route Breakdown Service (SPEC_FULL.md §4, §6, §10.1)
type RoutingConfig struct {
	// Mode определяет режим адаптера провайдера: cloud, selfhost, haversine
	Mode          string `koanf:"mode"`
	UseCloudMatrix bool  `koanf:"use_cloud_matrix"`

	Cloud    ProviderEndpointConfig `koanf:"cloud"`
	SelfHost ProviderEndpointConfig `koanf:"selfhost"`

	Breaker     BreakerSettingsConfig `koanf:"breaker"`
	Backoff     BackoffConfig         `koanf:"backoff"`
	MatrixCache MatrixCacheConfig     `koanf:"matrix_cache"`
	Breakdown   BreakdownConfig       `koanf:"breakdown"`
	Preview     PreviewConfig         `koanf:"preview"`
}

// ProviderEndpointConfig настройки HTTP-адаптера провайдера маршрутизации
type ProviderEndpointConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// BreakerSettingsConfig koanf-отражение pkg/breaker.Config для встраивания в общий конфиг
type BreakerSettingsConfig struct {
	Failures        int           `koanf:"failures"`
	Window          time.Duration `koanf:"window_s"`
	Cooldown        time.Duration `koanf:"cooldown_s"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// BackoffConfig экспоненциальный backoff с джиттером для вызовов адаптера провайдера
type BackoffConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	Factor     float64       `koanf:"factor"`
	JitterFrac float64       `koanf:"jitter_frac"`
	MaxDelay   time.Duration `koanf:"max_delay"`
	MaxAttempts int          `koanf:"max_attempts"`
}

// MatrixCacheConfig кэш матриц расстояний (§3, §4.3)
type MatrixCacheConfig struct {
	DefaultTTL    time.Duration `koanf:"default_ttl"`
	MaxMemoryMB   int64         `koanf:"max_memory_mb"`
}

// BreakdownConfig бюджеты Day-Route Breakdown Service (§4.5)
type BreakdownConfig struct {
	SegmentDeadline    time.Duration `koanf:"segment_deadline"`
	OverallDeadline    time.Duration `koanf:"overall_deadline"`
	MinSuccessFraction float64       `koanf:"min_success_fraction"`
	MaxConcurrentLegs  int           `koanf:"max_concurrent_legs"`
}

// PreviewConfig время жизни непросмотренного preview-токена (§6)
type PreviewConfig struct {
	TTL time.Duration `koanf:"ttl_s"`
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	var errs []string

	if c.App.Name == "" {
		errs = append(errs, "app.name is required")
	}

	if c.GRPC.Port <= 0 || c.GRPC.Port > 65535 {
		errs = append(errs, fmt.Sprintf("grpc.port must be between 1 and 65535, got %d", c.GRPC.Port))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	// Валидация Routing config
	validModes := map[string]bool{"cloud": true, "selfhost": true, "haversine": true}
	if c.Routing.Mode != "" && !validModes[c.Routing.Mode] {
		errs = append(errs, fmt.Sprintf("routing.mode must be one of: cloud, selfhost, haversine, got %s", c.Routing.Mode))
	}

	if c.Routing.Breakdown.MinSuccessFraction < 0 || c.Routing.Breakdown.MinSuccessFraction > 1 {
		errs = append(errs, "routing.breakdown.min_success_fraction must be between 0 and 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// IsDevelopment проверяет режим разработки
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "dev"
}

// IsProduction проверяет продакшн режим
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production" || c.App.Environment == "prod"
}
