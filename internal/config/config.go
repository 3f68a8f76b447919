package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service and worker settings.
type Config struct {
	Port       int
	LogLevel   string
	DB         DB
	Auth       Auth
	Kafka      Kafka
	AMQP       AMQP
	Payments   Payments
	Outbox     Outbox
	Photos     Photos
	Fees       Fees
	RateLimit  RateLimit
	Assignment Assignment
	Debug      Debug
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Auth stores bearer token settings.
type Auth struct {
	JWTSecret string
}

// Kafka stores broker settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers       []string
	GroupID       string
	JobsTopic     string
	PaymentsTopic string
}

// AMQP stores RabbitMQ settings for the payment publisher.
type AMQP struct {
	URL      string
	Exchange string
}

// Payment transports
const (
	TransportKafka = "kafka"
	TransportAMQP  = "amqp"
	TransportLog   = "log"
)

// Payments selects the payment notification transport and its retry policy.
type Payments struct {
	Transport   string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Outbox configures the payment outbox relay.
type Outbox struct {
	Schedule    string
	BatchSize   int
	MaxAttempts int
	// Timeout bounds one relay pass, notifier retries included.
	Timeout time.Duration
}

// Photos configures the evidence photo store.
type Photos struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
}

// Fees configures the delivery fee quote, in minor currency units.
type Fees struct {
	Base  int64
	PerKm int64
}

// RateLimit configures the per-principal token bucket.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Assignment configures the assignment service.
type Assignment struct {
	OperationTimeout time.Duration
}

// Debug configures the profiling and metrics listener. Empty Addr disables it.
type Debug struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       defaultPort,
		LogLevel:   defaultLogLevel,
		DB:         DefaultDB(),
		Kafka:      DefaultKafka(),
		AMQP:       DefaultAMQP(),
		Payments:   DefaultPayments(),
		Outbox:     DefaultOutbox(),
		Photos:     DefaultPhotos(),
		Fees:       DefaultFees(),
		RateLimit:  DefaultRateLimit(),
		Assignment: DefaultAssignment(),
	}

	e := &envReader{}
	cfg.Port = e.int("PORT", cfg.Port)
	cfg.LogLevel = e.str("LOG_LEVEL", cfg.LogLevel)

	cfg.DB.Host = e.str("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = e.str("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = e.str("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = e.str("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = e.str("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		e.errs = append(e.errs, fmt.Errorf("POSTGRES_PORT: %w", err))
	}

	cfg.Auth.JWTSecret = e.str("JWT_SECRET", cfg.Auth.JWTSecret)

	cfg.Kafka.Brokers = e.list("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.GroupID = e.str("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.JobsTopic = e.str("KAFKA_JOBS_TOPIC", cfg.Kafka.JobsTopic)
	cfg.Kafka.PaymentsTopic = e.str("KAFKA_PAYMENTS_TOPIC", cfg.Kafka.PaymentsTopic)

	cfg.AMQP.URL = e.str("AMQP_URL", cfg.AMQP.URL)
	cfg.AMQP.Exchange = e.str("AMQP_EXCHANGE", cfg.AMQP.Exchange)

	cfg.Payments.Transport = strings.ToLower(e.str("PAYMENTS_TRANSPORT", cfg.Payments.Transport))
	cfg.Payments.MaxAttempts = e.int("PAYMENTS_MAX_ATTEMPTS", cfg.Payments.MaxAttempts)
	cfg.Payments.BaseDelay = e.duration("PAYMENTS_BASE_DELAY", cfg.Payments.BaseDelay)
	cfg.Payments.MaxDelay = e.duration("PAYMENTS_MAX_DELAY", cfg.Payments.MaxDelay)

	cfg.Outbox.Schedule = e.str("OUTBOX_SCHEDULE", cfg.Outbox.Schedule)
	cfg.Outbox.BatchSize = e.int("OUTBOX_BATCH_SIZE", cfg.Outbox.BatchSize)
	cfg.Outbox.MaxAttempts = e.int("OUTBOX_MAX_ATTEMPTS", cfg.Outbox.MaxAttempts)
	cfg.Outbox.Timeout = e.duration("OUTBOX_TIMEOUT", cfg.Outbox.Timeout)

	cfg.Photos.Dir = e.str("PHOTOS_DIR", cfg.Photos.Dir)
	cfg.Photos.BaseURL = strings.TrimRight(e.str("PHOTOS_BASE_URL", cfg.Photos.BaseURL), "/")
	cfg.Photos.MaxBytes = e.int64("PHOTOS_MAX_BYTES", cfg.Photos.MaxBytes)

	cfg.Fees.Base = e.int64("FEE_BASE", cfg.Fees.Base)
	cfg.Fees.PerKm = e.int64("FEE_PER_KM", cfg.Fees.PerKm)

	cfg.RateLimit.Enabled = e.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = e.float("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = e.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = e.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = e.int("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	cfg.Assignment.OperationTimeout = e.duration("ASSIGNMENT_OPERATION_TIMEOUT", cfg.Assignment.OperationTimeout)

	cfg.Debug.Addr = e.str("DEBUG_ADDR", cfg.Debug.Addr)
	cfg.Debug.User = e.str("DEBUG_USER", cfg.Debug.User)
	cfg.Debug.Pass = e.str("DEBUG_PASSWORD", cfg.Debug.Pass)

	if err := errors.Join(e.errs...); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Debug.Addr, "debug-addr", cfg.Debug.Addr, "profiling and metrics listener address, empty to disable")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Payments.Transport, "payments-transport", cfg.Payments.Transport, "payment notification transport: kafka, amqp, log")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	switch c.Payments.Transport {
	case TransportKafka, TransportAMQP, TransportLog:
	default:
		errs = append(errs, fmt.Errorf("invalid payments transport: %q", c.Payments.Transport))
	}
	if c.Payments.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("invalid payments max attempts: %d", c.Payments.MaxAttempts))
	}
	if c.Outbox.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("invalid outbox batch size: %d", c.Outbox.BatchSize))
	}
	if c.Outbox.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid outbox timeout: %s", c.Outbox.Timeout))
	}
	if strings.TrimSpace(c.Outbox.Schedule) == "" {
		errs = append(errs, errors.New("outbox schedule is empty"))
	}
	if c.Photos.MaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("invalid photos max bytes: %d", c.Photos.MaxBytes))
	}
	if c.Fees.Base < 0 || c.Fees.PerKm < 0 {
		errs = append(errs, errors.New("fees must be >= 0"))
	}
	if c.Assignment.OperationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid assignment operation timeout: %s", c.Assignment.OperationTimeout))
	}
	return errors.Join(errs...)
}

// envReader reads typed environment variables and collects parse errors.
type envReader struct {
	errs []error
}

func (e *envReader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (e *envReader) int64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (e *envReader) float(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (e *envReader) bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func (e *envReader) list(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
