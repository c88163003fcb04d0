package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// Драйверы хранилища бронирований
const (
	StoreDriverAirtable = "airtable"
	StoreDriverPostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Store         StoreConfig         `toml:"store"`
	Airtable      AirtableConfig      `toml:"airtable"`
	Database      DatabaseConfig      `toml:"database"`
	Booking       BookingConfig       `toml:"booking"`
	Policy        PoliciesConfig      `toml:"policy"`
	Admin         AdminConfig         `toml:"admin"`
	Payments      PaymentsConfig      `toml:"payments"`
	Notifications NotificationsConfig `toml:"notifications"`
	CORS          CORSConfig          `toml:"cors"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StoreConfig выбор хранилища бронирований
type StoreConfig struct {
	Driver            string  `toml:"driver"`  // airtable | postgres
	Timeout           int     `toml:"timeout"` // секунды на один запрос
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// AirtableConfig параметры REST хранилища записей
type AirtableConfig struct {
	URL    string `toml:"url"`
	BaseID string `toml:"base_id"`
	Table  string `toml:"table"`
	APIKey string `toml:"api_key"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	HourlyRate float64 `toml:"hourly_rate"`
	Timezone   string  `toml:"timezone"`  // IANA, например Europe/Berlin
	CacheTTL   int     `toml:"cache_ttl"` // секунды, 0 = без кэша
}

// Location возвращает зону, в которой проверяются рабочие часы
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

// CacheTTLDuration возвращает время жизни кэша бронирований
func (b BookingConfig) CacheTTLDuration() time.Duration {
	return time.Duration(b.CacheTTL) * time.Second
}

type PoliciesConfig struct {
	Public PolicyConfig `toml:"public"`
	Admin  PolicyConfig `toml:"admin"`
}

// PolicyConfig окно времени для одного потока
type PolicyConfig struct {
	OpenHour      int    `toml:"open_hour"`
	CloseHour     int    `toml:"close_hour"`
	ClosedWeekday string `toml:"closed_weekday"` // пусто = без выходного
	SlotMinutes   int    `toml:"slot_minutes"`
}

// ToDomain конвертирует настройки в политику домена
func (p PolicyConfig) ToDomain(loc *time.Location) (domain.Policy, error) {
	policy := domain.Policy{
		OpenHour:        p.OpenHour,
		CloseHour:       p.CloseHour,
		SlotGranularity: time.Duration(p.SlotMinutes) * time.Minute,
		Location:        loc,
	}

	if p.ClosedWeekday != "" {
		weekday, err := parseWeekday(p.ClosedWeekday)
		if err != nil {
			return domain.Policy{}, err
		}
		policy.ClosedWeekday = &weekday
	}

	return policy, nil
}

// AdminConfig параметры доступа администратора
type AdminConfig struct {
	Password        string `toml:"password"`
	SessionHashKey  string `toml:"session_hash_key"`
	SessionBlockKey string `toml:"session_block_key"`
	SecureCookie    bool   `toml:"secure_cookie"`
}

// PaymentsConfig параметры Stripe
type PaymentsConfig struct {
	Enabled   bool   `toml:"enabled"`
	SecretKey string `toml:"secret_key"`
	Currency  string `toml:"currency"`
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`
}

// NotificationsConfig параметры SendGrid
type NotificationsConfig struct {
	Enabled   bool   `toml:"enabled"`
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	URL       string `toml:"url"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла
// Секреты переопределяются переменными окружения, в том числе из файла .env рядом с процессом
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "lift-rental",
		},
		Store: StoreConfig{
			Driver:            StoreDriverAirtable,
			Timeout:           10,
			RequestsPerSecond: 5,
		},
		Airtable: AirtableConfig{
			URL:   "https://api.airtable.com/v0",
			Table: "Bookings",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			HourlyRate: domain.DefaultHourlyRate,
			CacheTTL:   30,
		},
		Policy: PoliciesConfig{
			Public: PolicyConfig{
				OpenHour:    domain.DefaultPublicOpenHour,
				CloseHour:   domain.DefaultPublicCloseHour,
				SlotMinutes: 60,
			},
			Admin: PolicyConfig{
				OpenHour:      domain.DefaultAdminOpenHour,
				CloseHour:     domain.DefaultAdminCloseHour,
				ClosedWeekday: "sunday",
				SlotMinutes:   60,
			},
		},
		Payments: PaymentsConfig{
			Currency: "eur",
			Timeout:  15,
		},
	}
}

// applyEnv переопределяет секреты значениями из окружения
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"ADMIN_PASSWORD":      &cfg.Admin.Password,
		"SESSION_HASH_KEY":    &cfg.Admin.SessionHashKey,
		"SESSION_BLOCK_KEY":   &cfg.Admin.SessionBlockKey,
		"AIRTABLE_API_KEY":    &cfg.Airtable.APIKey,
		"AIRTABLE_BASE_ID":    &cfg.Airtable.BaseID,
		"AIRTABLE_TABLE_NAME": &cfg.Airtable.Table,
		"DATABASE_PASSWORD":   &cfg.Database.Password,
		"STRIPE_SECRET_KEY":   &cfg.Payments.SecretKey,
		"SENDGRID_API_KEY":    &cfg.Notifications.APIKey,
	}

	for name, target := range overrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*target = value
		}
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	switch c.Store.Driver {
	case StoreDriverAirtable:
		if c.Airtable.BaseID == "" || c.Airtable.Table == "" || c.Airtable.APIKey == "" {
			errs = append(errs, errors.New("airtable: base_id, table and api_key are required"))
		}
	case StoreDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("database: host and dbname are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver %q is not supported", c.Store.Driver))
	}

	if c.Store.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("store.requests_per_second must not be negative"))
	}

	if c.Booking.HourlyRate <= 0 {
		errs = append(errs, errors.New("booking.hourly_rate must be positive"))
	}

	loc, err := c.Booking.Location()
	if err != nil {
		errs = append(errs, fmt.Errorf("booking.timezone: %w", err))
		loc = time.UTC
	}

	for name, p := range map[string]PolicyConfig{"public": c.Policy.Public, "admin": c.Policy.Admin} {
		if p.OpenHour < 0 || p.CloseHour > 24 || p.OpenHour >= p.CloseHour {
			errs = append(errs, fmt.Errorf("policy.%s: open_hour %d must be before close_hour %d within 0..24", name, p.OpenHour, p.CloseHour))
		}
		if p.SlotMinutes <= 0 {
			errs = append(errs, fmt.Errorf("policy.%s: slot_minutes must be positive", name))
		}
		if _, err := p.ToDomain(loc); err != nil {
			errs = append(errs, fmt.Errorf("policy.%s: %w", name, err))
		}
	}

	if n := len(c.Admin.SessionBlockKey); n != 0 && n != 16 && n != 24 && n != 32 {
		errs = append(errs, errors.New("admin.session_block_key must be 16, 24 or 32 bytes"))
	}

	if c.Payments.Enabled && c.Payments.SecretKey == "" {
		errs = append(errs, errors.New("payments: secret_key is required when enabled"))
	}

	if c.Notifications.Enabled && (c.Notifications.APIKey == "" || c.Notifications.FromEmail == "") {
		errs = append(errs, errors.New("notifications: api_key and from_email are required when enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
