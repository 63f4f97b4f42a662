// Package config handles configuration loading for the gateway client.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows credentials such
// as the merchant password to be injected at runtime.
//
// # Configuration Sections
//
//   - gateway: Merchant credentials, mode and endpoints
//   - transport: HTTP timeout, retry policy and response size limit
//   - cache: Which documents to keep and where (filesystem or mongodb)
//   - tracing: OpenTelemetry span emission
//
// # Example Configuration
//
//	gateway:
//	  merchantId: "88801234"
//	  password: ${FAC_PASSWORD}
//	  acquirerId: "464748"
//	  testMode: true
//	  orderNumberPrefix: "WEB-"
//
//	transport:
//	  timeout: 30s
//	  maxRetries: 2
//	  retryInterval: 500ms
//	  maxResponseBytes: 1048576
//
//	cache:
//	  requests: true
//	  transactions: true
//	  backend: filesystem
//	  directory: transactions
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-fac/pkg/cache"
	"github.com/sirosfoundation/go-fac/pkg/cache/mongodb"
	"github.com/sirosfoundation/go-fac/pkg/params"
	"github.com/sirosfoundation/go-fac/pkg/transport"
)

// Cache backends
const (
	BackendFilesystem = "filesystem"
	BackendMongoDB    = "mongodb"
)

// Config is the root configuration structure
type Config struct {
	Gateway   GatewayConfig   `yaml:"gateway"`
	Transport TransportConfig `yaml:"transport"`
	Cache     CacheConfig     `yaml:"cache"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// GatewayConfig holds merchant credentials and endpoint selection
type GatewayConfig struct {
	MerchantID         string `yaml:"merchantId"`
	Password           string `yaml:"password"`
	AcquirerID         string `yaml:"acquirerId"`
	TestMode           bool   `yaml:"testMode"`
	TestEndpoint       string `yaml:"testEndpoint"`
	ProductionEndpoint string `yaml:"productionEndpoint"`
	OrderNumberPrefix  string `yaml:"orderNumberPrefix"`
	OrderNumberAutoGen bool   `yaml:"orderNumberAutoGen"`
	// SignatureMethod defaults to SHA1, the only method the gateway accepts
	SignatureMethod string `yaml:"signatureMethod"`
}

// TransportConfig holds HTTP client settings
type TransportConfig struct {
	Timeout          time.Duration `yaml:"timeout"`
	MaxRetries       int           `yaml:"maxRetries"`
	RetryInterval    time.Duration `yaml:"retryInterval"`
	UserAgent        string        `yaml:"userAgent"`
	MaxResponseBytes int64         `yaml:"maxResponseBytes"`
}

// CacheConfig holds document caching settings
type CacheConfig struct {
	Requests     bool          `yaml:"requests"`
	Transactions bool          `yaml:"transactions"`
	Backend      string        `yaml:"backend"`
	Directory    string        `yaml:"directory"`
	MongoDB      MongoDBConfig `yaml:"mongodb"`
}

// MongoDBConfig holds MongoDB connection settings
type MongoDBConfig struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	BucketName     string `yaml:"bucketName"`
	ChunkSizeBytes int    `yaml:"chunkSizeBytes"`
}

// TracingConfig holds tracing settings
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse reads configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Gateway.SignatureMethod == "" {
		c.Gateway.SignatureMethod = params.SignatureMethodSHA1
	}
	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = 30 * time.Second
	}
	if c.Transport.RetryInterval == 0 {
		c.Transport.RetryInterval = time.Second
	}
	if c.Transport.MaxResponseBytes == 0 {
		c.Transport.MaxResponseBytes = transport.DefaultMaxResponseBytes
	}
	if c.Transport.UserAgent == "" {
		c.Transport.UserAgent = transport.DefaultUserAgent
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFilesystem
	}
	if c.Cache.Directory == "" {
		c.Cache.Directory = cache.DefaultDir
	}
	if c.Cache.MongoDB.Database == "" {
		c.Cache.MongoDB.Database = "fac"
	}
	if c.Cache.MongoDB.BucketName == "" {
		c.Cache.MongoDB.BucketName = "transactions"
	}
	if c.Cache.MongoDB.ChunkSizeBytes == 0 {
		c.Cache.MongoDB.ChunkSizeBytes = 261120 // 255KB
	}
}

func (c *Config) validate() error {
	if c.Gateway.MerchantID == "" {
		return fmt.Errorf("gateway.merchantId is required")
	}
	if c.Gateway.AcquirerID == "" {
		return fmt.Errorf("gateway.acquirerId is required")
	}
	if c.Gateway.SignatureMethod != params.SignatureMethodSHA1 {
		return fmt.Errorf("gateway.signatureMethod must be '%s', got '%s'", params.SignatureMethodSHA1, c.Gateway.SignatureMethod)
	}

	if c.Transport.MaxRetries < 0 {
		return fmt.Errorf("transport.maxRetries must not be negative")
	}
	if c.Transport.MaxResponseBytes < 0 {
		return fmt.Errorf("transport.maxResponseBytes must not be negative")
	}

	switch c.Cache.Backend {
	case BackendFilesystem, BackendMongoDB:
		// Valid backends
	default:
		return fmt.Errorf("cache.backend must be '%s' or '%s', got '%s'", BackendFilesystem, BackendMongoDB, c.Cache.Backend)
	}

	if c.Cache.Backend == BackendMongoDB && c.Cache.MongoDB.URI == "" {
		return fmt.Errorf("cache.mongodb.uri is required when backend is 'mongodb'")
	}

	return nil
}

// Parameters returns a parameter store seeded with the gateway settings
func (c *Config) Parameters() *params.Parameters {
	p := params.New().
		SetFacID(c.Gateway.MerchantID).
		SetPassword(c.Gateway.Password).
		SetAcquirerID(c.Gateway.AcquirerID).
		SetTestMode(c.Gateway.TestMode).
		SetSignatureMethod(c.Gateway.SignatureMethod).
		SetCacheRequest(c.Cache.Requests).
		SetCacheTransaction(c.Cache.Transactions)
	if c.Gateway.OrderNumberPrefix != "" {
		p.SetOrderNumberPrefix(c.Gateway.OrderNumberPrefix)
	}
	if c.Gateway.OrderNumberAutoGen {
		p.SetOrderNumberAutoGen(true)
	}
	return p
}

// HTTPSConfig returns the transport configuration
func (c *Config) HTTPSConfig() *transport.HTTPSConfig {
	cfg := transport.DefaultHTTPSConfig()
	cfg.Timeout = c.Transport.Timeout
	cfg.MaxRetries = c.Transport.MaxRetries
	cfg.RetryInterval = c.Transport.RetryInterval
	cfg.UserAgent = c.Transport.UserAgent
	cfg.MaxResponseBytes = c.Transport.MaxResponseBytes
	return cfg
}

// MongoDBStoreConfig returns the GridFS store configuration
func (c *Config) MongoDBStoreConfig() *mongodb.Config {
	return &mongodb.Config{
		URI:            c.Cache.MongoDB.URI,
		Database:       c.Cache.MongoDB.Database,
		Bucket:         c.Cache.MongoDB.BucketName,
		ChunkSizeBytes: int32(c.Cache.MongoDB.ChunkSizeBytes),
	}
}
