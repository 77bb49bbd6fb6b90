// Package audit provides client initialization and configuration.
//
// The Client provides a high-level interface for auditing DynamoDB tables,
// supporting catalog resolution, exhaustive scans, duplicate detection, and
// ownership aggregation with configurable options for pagination, retries,
// and concurrency.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"

	"github.com/budgetbuddy/tableaudit/audittypes"
	"github.com/budgetbuddy/tableaudit/internal/dynamoapi"
)

// Client represents an audit client with configurable options.
// It provides thread-safe access to table audit operations with built-in
// retry logic and concurrency control for multi-table runs.
type Client struct {
	// dbClient is the underlying AWS SDK DynamoDB client
	dbClient dynamoapi.DynamoDBAPI

	// rawClient holds the actual AWS DynamoDB client for operations that need it
	rawClient *dynamodb.Client

	// config holds the AWS configuration
	config aws.Config

	// pageLimit caps items per scan page; 0 lets the backend choose
	pageLimit int32

	// concurrency bounds how many tables are analyzed in parallel
	concurrency int

	// mu protects concurrent access to client configuration
	mu sync.RWMutex

	// fs is the filesystem abstraction for report persistence
	fs fs.Filesystem

	// logger receives progress and failure logs
	logger *slog.Logger
}

// New creates a new audit client with the provided options.
// It loads AWS credentials using the default credential chain
// and applies the specified configuration options.
//
// Example:
//
//	client, err := audit.New(
//	    audit.WithRegion("us-west-2"),
//	    audit.WithMaxRetries(3),
//	)
func New(opts ...audittypes.Option) (*Client, error) {
	// Apply functional options first to check for custom config
	clientCfg := &audittypes.ClientConfig{
		MaxRetries:  3, // Default retry count
		Timeout:     0, // No timeout by default
		Concurrency: 4, // Default table-level parallelism
	}

	for _, opt := range opts {
		opt(clientCfg)
	}

	// Start with default AWS configuration or use custom config
	var cfg aws.Config
	var err error

	if clientCfg.CustomAWSConfig != nil {
		cfg = *clientCfg.CustomAWSConfig
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("client initialization: %w", err)
		}
	}

	// Apply region from options if specified, otherwise ensure a region is set
	if clientCfg.Region != "" {
		cfg.Region = clientCfg.Region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1" // AWS default region
	}

	if clientCfg.MaxRetries > 0 {
		cfg.RetryMaxAttempts = clientCfg.MaxRetries
	}

	// Create DynamoDB client with options
	var dbOpts []func(*dynamodb.Options)

	if clientCfg.Endpoint != "" {
		dbOpts = append(dbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(clientCfg.Endpoint)
		})
	}

	// Handle custom HTTP client for timeout
	httpClient := clientCfg.CustomHTTPClient
	if httpClient == nil && clientCfg.Timeout > 0 {
		httpClient = &http.Client{
			Timeout: clientCfg.Timeout,
		}
	}
	if httpClient != nil {
		dbOpts = append(dbOpts, func(o *dynamodb.Options) {
			o.HTTPClient = httpClient
		})
	}

	dbClient := dynamodb.NewFromConfig(cfg, dbOpts...)

	// Initialize filesystem - use provided one or default to OS filesystem
	var filesystem fs.Filesystem
	if clientCfg.Filesystem != nil {
		filesystem = clientCfg.Filesystem
	} else {
		// Default to OS filesystem rooted at /
		filesystem = billy.NewOSFS("/")
	}

	logger := clientCfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		dbClient:    dbClient,
		rawClient:   dbClient,
		config:      cfg,
		pageLimit:   clientCfg.PageLimit,
		concurrency: clientCfg.Concurrency,
		fs:          filesystem,
		logger:      logger,
	}

	return client, nil
}

// NewWithClient creates a new audit client with a custom DynamoDBAPI implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(dbClient dynamoapi.DynamoDBAPI, opts ...audittypes.Option) *Client {
	clientCfg := &audittypes.ClientConfig{
		Concurrency: 4,
	}
	for _, opt := range opts {
		opt(clientCfg)
	}

	filesystem := clientCfg.Filesystem
	if filesystem == nil {
		filesystem = billy.NewOSFS("/") // Default to OS filesystem
	}
	logger := clientCfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		dbClient:    dbClient,
		config:      aws.Config{},
		pageLimit:   clientCfg.PageLimit,
		concurrency: clientCfg.Concurrency,
		fs:          filesystem,
		logger:      logger,
	}
}

// SetFilesystem sets the filesystem implementation for the client.
// This is useful for testing or when the filesystem needs to be changed after creation.
func (c *Client) SetFilesystem(filesystem fs.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fs = filesystem
}

// Close releases any resources held by the client.
// Currently a no-op but included for future extensibility.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return nil
}
