// Package testutil provides test utilities and mocks for audit operations.
// This package is internal and should only be used for testing within the audit module.
package testutil

import (
	"context"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/budgetbuddy/tableaudit/internal/dynamoapi"
)

// MockDynamoClient is a mock implementation of the DynamoDBAPI interface for testing.
// It allows customization of each operation through function fields.
type MockDynamoClient struct {
	ScanFunc          func(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTableFunc func(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)

	// ScanCalls counts Scan invocations across all goroutines.
	ScanCalls atomic.Int32
}

// Scan mocks the DynamoDB Scan operation.
func (m *MockDynamoClient) Scan(
	ctx context.Context,
	params *dynamodb.ScanInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.ScanOutput, error) {
	m.ScanCalls.Add(1)
	if m.ScanFunc != nil {
		return m.ScanFunc(ctx, params, optFns...)
	}
	return &dynamodb.ScanOutput{}, nil
}

// DescribeTable mocks the DynamoDB DescribeTable operation.
func (m *MockDynamoClient) DescribeTable(
	ctx context.Context,
	params *dynamodb.DescribeTableInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.DescribeTableOutput, error) {
	if m.DescribeTableFunc != nil {
		return m.DescribeTableFunc(ctx, params, optFns...)
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{}}, nil
}

// Verify MockDynamoClient implements the DynamoDBAPI interface
var _ dynamoapi.DynamoDBAPI = (*MockDynamoClient)(nil)
