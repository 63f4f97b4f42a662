package fac

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/sirosfoundation/go-fac/pkg/cache"
	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/params"
	"github.com/sirosfoundation/go-fac/pkg/transport"
)

// Gateway endpoints. The operation name is appended to form the URL.
const (
	EndpointUAT        = "https://ecm.firstatlanticcommerce.com/PGServiceXML/"
	EndpointProduction = "https://marlin.firstatlanticcommerce.com/PGServiceXML/"
)

// ContentType is sent with every request. The gateway expects text/html
// even though the body is XML.
const ContentType = "text/html"

const tracerName = "github.com/sirosfoundation/go-fac/pkg/fac"

// Client sends requests to the gateway
type Client struct {
	transport          transport.Transport
	testEndpoint       string
	productionEndpoint string
	cache              *cache.Writer
	logger             *slog.Logger
	tracer             trace.Tracer
}

// ClientConfig holds client configuration
type ClientConfig struct {
	// Transport overrides the HTTPS transport built from HTTPSConfig
	Transport   transport.Transport
	HTTPSConfig *transport.HTTPSConfig

	// CacheStore receives cached documents. When nil, documents are written
	// to CacheDir. Whether anything is cached is decided per request by the
	// cacheRequest and cacheTransaction parameters.
	CacheStore cache.Store
	CacheDir   string

	// Endpoint overrides, mainly for tests
	TestEndpoint       string
	ProductionEndpoint string

	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// NewClient creates a new gateway client
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	t := config.Transport
	if t == nil {
		t = transport.NewHTTPSClient(config.HTTPSConfig)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := config.CacheStore
	if store == nil {
		store = cache.NewDirStore(config.CacheDir)
	}

	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		transport:          t,
		testEndpoint:       withTrailingSlash(config.TestEndpoint, EndpointUAT),
		productionEndpoint: withTrailingSlash(config.ProductionEndpoint, EndpointProduction),
		cache:              cache.NewWriter(store, logger),
		logger:             logger,
		tracer:             tp.Tracer(tracerName),
	}, nil
}

func withTrailingSlash(endpoint, fallback string) string {
	if endpoint == "" {
		return fallback
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return endpoint
}

// Endpoint returns the base URL for the given mode
func (c *Client) Endpoint(testMode bool) string {
	if testMode {
		return c.testEndpoint
	}
	return c.productionEndpoint
}

// NewRequest creates a request for op backed by p. The request takes
// ownership of p; it must not be used by another request concurrently.
func (c *Client) NewRequest(op message.Operation, p *params.Parameters) *Request {
	if p == nil {
		p = params.New()
	}
	return &Request{client: c, op: op, params: p}
}

// Send prepares and sends a one-off request. fields may be a function of the
// prepared parameters, see FieldsFunc.
func (c *Client) Send(ctx context.Context, op message.Operation, p *params.Parameters, fields FieldsFunc) (Result, error) {
	req := c.NewRequest(op, p)
	if err := req.Prepare(); err != nil {
		return nil, err
	}
	var f message.Field
	if fields != nil {
		f = fields(req.Parameters())
	}
	return req.Send(ctx, f)
}

// FieldsFunc builds request fields from prepared parameters, so the resolved
// transaction id and signature can be included
type FieldsFunc func(p *params.Parameters) message.Field
