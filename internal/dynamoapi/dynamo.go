// Package dynamoapi defines interfaces for DynamoDB operations to enable testing and mocking.
package dynamoapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI defines the interface for DynamoDB operations used by this module.
// This interface allows for mocking in tests and potential future implementations.
type DynamoDBAPI interface {
	// Scan retrieves one page of items from a table
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)

	// DescribeTable retrieves metadata about a table without reading items
	DescribeTable(
		ctx context.Context,
		params *dynamodb.DescribeTableInput,
		optFns ...func(*dynamodb.Options),
	) (*dynamodb.DescribeTableOutput, error)
}

// Verify that the AWS DynamoDB client implements our interface
var _ DynamoDBAPI = (*dynamodb.Client)(nil)
