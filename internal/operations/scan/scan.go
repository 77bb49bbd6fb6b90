package scan

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/budgetbuddy/tableaudit/audittypes"
)

// DynamoInterface defines the DynamoDB operations we need.
type DynamoInterface interface {
	Scan(
		ctx context.Context,
		input *dynamodb.ScanInput,
		opts ...func(*dynamodb.Options),
	) (*dynamodb.ScanOutput, error)
}

// Scanner handles exhaustive retrieval of all items in a table.
type Scanner struct {
	client DynamoInterface
}

// New creates a new Scanner.
func New(client DynamoInterface) *Scanner {
	return &Scanner{
		client: client,
	}
}

// Config holds configuration for scan operations.
type Config struct {
	Table     string
	PageLimit int32 // Max items per page; 0 lets the backend choose
}

// Result represents one page of a table scan.
type Result struct {
	Records []audittypes.Record
	Count   int
}

// Pages creates a paginator for exhaustive multi-page scanning. Each page's
// continuation cursor comes from the prior page's response, so pagination
// within one table is strictly sequential. A paginator is restartable from
// scratch only; create a new one to rescan.
func (s *Scanner) Pages(config *Config) *Paginator {
	return &Paginator{
		client:    s.client,
		config:    config,
		firstPage: true,
	}
}

// ScanAll streams every item in the table exactly once. The stream ends after
// the final page (absent continuation cursor) or after the first fetch error,
// which is delivered as the last result; no further pages are requested after
// an error.
func (s *Scanner) ScanAll(ctx context.Context, config *Config) <-chan RecordResult {
	resultChan := make(chan RecordResult, 100) // Buffered for performance

	go func() {
		defer close(resultChan)

		paginator := s.Pages(config)

		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				resultChan <- RecordResult{Err: err}
				return
			}

			for _, rec := range page.Records {
				select {
				case resultChan <- RecordResult{Record: rec}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return resultChan
}

// RecordResult wraps a record or error.
type RecordResult struct {
	Record audittypes.Record
	Err    error
}

// Paginator handles cursor-based pagination over one table.
type Paginator struct {
	client       DynamoInterface
	config       *Config
	startKey     map[string]types.AttributeValue
	hasMorePages bool
	firstPage    bool
}

// HasMorePages returns true if there are more pages to fetch.
func (p *Paginator) HasMorePages() bool {
	return p.firstPage || p.hasMorePages
}

// NextPage fetches the next page of items.
func (p *Paginator) NextPage(ctx context.Context) (*Result, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(p.config.Table),
	}

	if p.config.PageLimit > 0 {
		input.Limit = aws.Int32(p.config.PageLimit)
	}

	if !p.firstPage && p.startKey != nil {
		input.ExclusiveStartKey = p.startKey
	}

	output, err := p.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scan page: %w", err)
	}

	p.firstPage = false
	p.startKey = output.LastEvaluatedKey
	p.hasMorePages = len(output.LastEvaluatedKey) > 0

	return convertOutput(output), nil
}

// convertOutput converts DynamoDB scan output to our Result type.
func convertOutput(output *dynamodb.ScanOutput) *Result {
	result := &Result{
		Records: make([]audittypes.Record, 0, len(output.Items)),
	}

	for _, item := range output.Items {
		result.Records = append(result.Records, fromItem(item))
	}
	result.Count = len(result.Records)

	return result
}

// fromItem converts a wire-level DynamoDB item into a Record. Only scalar
// attributes carry over; sets, lists, maps, binary and NULL attributes cannot
// serve as identity or owner keys and are treated as absent fields.
func fromItem(item map[string]types.AttributeValue) audittypes.Record {
	rec := make(audittypes.Record, len(item))

	for name, attr := range item {
		switch v := attr.(type) {
		case *types.AttributeValueMemberS:
			rec[name] = audittypes.StringValue(v.Value)
		case *types.AttributeValueMemberN:
			rec[name] = audittypes.NumberValue(v.Value)
		case *types.AttributeValueMemberBOOL:
			rec[name] = audittypes.BoolValue(v.Value)
		}
	}

	return rec
}
