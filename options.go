// Package audit provides functional options for configuring audit client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package audit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"

	"github.com/budgetbuddy/tableaudit/audittypes"
)

// WithRegion sets the AWS region for DynamoDB operations.
// If not specified, uses the default AWS region from the credential chain.
func WithRegion(region string) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.Region = region
	}
}

// WithMaxRetries sets the maximum number of retry attempts for failed operations.
// Default is 3 retries. Set to 0 to disable retries.
func WithMaxRetries(maxRetries int) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.MaxRetries = maxRetries
	}
}

// WithTimeout sets the timeout for individual page fetches.
// Default is no timeout (0). Values should be positive durations.
// A timeout never corrupts a report: a timed-out scan aborts that table's
// analysis entirely and its partial results are discarded.
func WithTimeout(timeout time.Duration) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.Timeout = timeout
	}
}

// WithConcurrency sets the number of tables analyzed in parallel.
// Pagination within one table stays strictly sequential.
// Default is 4 concurrent tables.
func WithConcurrency(concurrency int) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithPageLimit caps the number of items requested per scan page.
// Default is 0, which lets the backend choose the page size.
func WithPageLimit(limit int32) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		if limit > 0 {
			c.PageLimit = limit
		}
	}
}

// WithAWSConfig allows providing a custom AWS configuration.
// This overrides the default configuration loading behavior.
// Use this when you need fine-grained control over AWS SDK configuration.
func WithAWSConfig(config *aws.Config) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.CustomAWSConfig = config
	}
}

// WithEndpoint sets a custom DynamoDB endpoint URL.
// This is useful for DynamoDB Local or compatible services.
func WithEndpoint(endpoint string) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.Endpoint = endpoint
	}
}

// WithCustomHTTPClient allows providing a custom HTTP client.
// This gives full control over HTTP behavior including timeouts, proxies, etc.
func WithCustomHTTPClient(client *http.Client) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.CustomHTTPClient = client
	}
}

// WithFilesystem sets a custom filesystem implementation for report persistence.
// This allows using in-memory filesystems for testing or virtual filesystems.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem fs.Filesystem) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithLogger sets the logger for progress and failure logs.
// If not specified, defaults to slog.Default().
func WithLogger(logger *slog.Logger) audittypes.Option {
	return func(c *audittypes.ClientConfig) {
		c.Logger = logger
	}
}
