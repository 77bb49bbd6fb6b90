// Package testutil provides a builder for creating mock DynamoDB clients.
package testutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MockBuilder provides a fluent interface for building MockDynamoClient instances.
type MockBuilder struct {
	client *MockDynamoClient
}

// NewMockBuilder creates a new MockBuilder.
func NewMockBuilder() *MockBuilder {
	return &MockBuilder{
		client: &MockDynamoClient{},
	}
}

// Build returns the configured MockDynamoClient.
func (b *MockBuilder) Build() *MockDynamoClient {
	return b.client
}

// WithScan configures the Scan behavior.
func (b *MockBuilder) WithScan(
	fn func(context.Context, *dynamodb.ScanInput) (*dynamodb.ScanOutput, error),
) *MockBuilder {
	b.client.ScanFunc = func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
		return fn(ctx, params)
	}
	return b
}

// WithPagedScan configures Scan to serve the given pages in order.
func (b *MockBuilder) WithPagedScan(pages ...[]map[string]types.AttributeValue) *MockBuilder {
	b.client.ScanFunc = PagedScan(pages...)
	return b
}

// WithDescribeTable configures the DescribeTable behavior.
func (b *MockBuilder) WithDescribeTable(
	fn func(context.Context, *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error),
) *MockBuilder {
	b.client.DescribeTableFunc = func(ctx context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
		return fn(ctx, params)
	}
	return b
}
