package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxAttempts        = 5
	defaultChunkCooldown      = time.Second
	defaultQueueBatchSize     = 10
	defaultScanWindow         = 24 * time.Hour
	defaultScanLockTTL        = time.Minute
	defaultWorkerPort         = 8081
	defaultReconcileLimit     = 100
	defaultReconcileBackoff   = time.Hour
)

// Store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMemory    = "memory"
)

// Bulk batch modes
const (
	BatchModeAtomic     = "atomic"
	BatchModeBestEffort = "best_effort"
)

// Referrer resolver strategies
const (
	ResolverDeferred = "deferred"
	ResolverLookup   = "lookup"
)

// Auth providers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the entity store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore and ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Referral configuration for referrer resolution
	Referral *ReferralConfig `json:"referral" yaml:"referral"`

	Bulk *BulkConfig `json:"bulk" yaml:"bulk"`

	// Queue configuration for the admin work queue and its schedules
	Queue *QueueConfig `json:"queue" yaml:"queue"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the queue scan lock
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Worker configuration for the push endpoint server
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the entity store backend
type StoreConfig struct {
	// Driver is one of firestore, postgres or memory
	Driver string `json:"driver" yaml:"driver"`

	// MaxAttempts bounds transaction retries on write conflicts
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// SlowQueryThreshold is the elapsed time past which postgres statements are logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines how admin tokens are verified
type AuthConfig struct {
	// Provider is jwt or firebase
	Provider string `json:"provider" yaml:"provider"`

	// Secret signs HS256 tokens for the jwt provider
	Secret string `json:"secret" yaml:"secret"`

	Issuer string `json:"issuer" yaml:"issuer"`

	// AdminRole is the role claim value granting admin access
	AdminRole string `json:"adminRole" yaml:"adminRole"`
}

// ReferralConfig defines referrer resolution
type ReferralConfig struct {
	// Resolver is deferred or lookup
	Resolver string `json:"resolver" yaml:"resolver"`
}

// BulkConfig defines bulk write behaviour
type BulkConfig struct {
	// BatchMode is atomic or best_effort
	BatchMode string `json:"batchMode" yaml:"batchMode"`
}

// QueueConfig defines queue processing and scheduled jobs
type QueueConfig struct {
	ChunkCooldown time.Duration `json:"chunkCooldown" yaml:"chunkCooldown"`
	BatchSize     int           `json:"batchSize" yaml:"batchSize"`
	ScanWindow    time.Duration `json:"scanWindow" yaml:"scanWindow"`

	// SweepLimit caps pending items picked up per scheduled sweep
	SweepLimit int `json:"sweepLimit" yaml:"sweepLimit"`

	// AutoApproveThreshold enables the low-value auto approval job when positive
	AutoApproveThreshold float64 `json:"autoApproveThreshold" yaml:"autoApproveThreshold"`

	// SystemAdminID is recorded as the acting admin for scheduled jobs
	SystemAdminID string `json:"systemAdminId" yaml:"systemAdminId"`

	Schedules struct {
		Scan        string `json:"scan" yaml:"scan"`
		Sweep       string `json:"sweep" yaml:"sweep"`
		AutoApprove string `json:"autoApprove" yaml:"autoApprove"`
		// Reconcile runs the unresolved referral sweep in the worker; empty disables it
		Reconcile string `json:"reconcile" yaml:"reconcile"`
	} `json:"schedules" yaml:"schedules"`

	// ReconcileLimit caps referrals resolved per reconcile run
	ReconcileLimit int `json:"reconcileLimit" yaml:"reconcileLimit"`

	// ReconcileBackoff delays the next attempt on a referral code that matched no user
	ReconcileBackoff time.Duration `json:"reconcileBackoff" yaml:"reconcileBackoff"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic ID (google provider) or topic name (kafka provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka broker addresses, comma separated (for kafka provider)
	Brokers string `json:"brokers" yaml:"brokers"`

	// PushAudience is the expected audience of Pub/Sub push OIDC tokens (empty disables verification)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// RedisConfig defines the Redis connection used by the scan lock
type RedisConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LockTTL  time.Duration `json:"lockTtl" yaml:"lockTtl"`
}

// WorkerConfig defines the worker push server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: QUEUE_CHUNKCOOLDOWN -> queue.chunkCooldown (not queue.chunkcooldown)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverMemory
	}
	if cfg.Store.MaxAttempts <= 0 {
		cfg.Store.MaxAttempts = defaultMaxAttempts
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderJWT
	}
	if cfg.Auth.AdminRole == "" {
		cfg.Auth.AdminRole = "admin"
	}

	if cfg.Referral == nil {
		cfg.Referral = &ReferralConfig{}
	}
	if cfg.Referral.Resolver == "" {
		cfg.Referral.Resolver = ResolverDeferred
	}

	if cfg.Bulk == nil {
		cfg.Bulk = &BulkConfig{}
	}
	if cfg.Bulk.BatchMode == "" {
		cfg.Bulk.BatchMode = BatchModeAtomic
	}

	if cfg.Queue == nil {
		cfg.Queue = &QueueConfig{}
	}
	if cfg.Queue.ChunkCooldown <= 0 {
		cfg.Queue.ChunkCooldown = defaultChunkCooldown
	}
	if cfg.Queue.BatchSize <= 0 {
		cfg.Queue.BatchSize = defaultQueueBatchSize
	}
	if cfg.Queue.ScanWindow <= 0 {
		cfg.Queue.ScanWindow = defaultScanWindow
	}
	if cfg.Queue.SweepLimit <= 0 {
		cfg.Queue.SweepLimit = cfg.Queue.BatchSize
	}
	if cfg.Queue.ReconcileLimit <= 0 {
		cfg.Queue.ReconcileLimit = defaultReconcileLimit
	}
	if cfg.Queue.ReconcileBackoff <= 0 {
		cfg.Queue.ReconcileBackoff = defaultReconcileBackoff
	}
	if cfg.Queue.SystemAdminID == "" {
		cfg.Queue.SystemAdminID = "system"
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.LockTTL <= 0 {
		cfg.Redis.LockTTL = defaultScanLockTTL
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
