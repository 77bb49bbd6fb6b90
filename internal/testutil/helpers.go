// Package testutil provides test helper functions.
package testutil

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StringAttr returns a wire-level string attribute value.
func StringAttr(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

// NumberAttr returns a wire-level number attribute value.
func NumberAttr(n string) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: n}
}

// BoolAttr returns a wire-level boolean attribute value.
func BoolAttr(b bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: b}
}

// Item builds a wire-level item from string fields, the common case in tests.
func Item(fields map[string]string) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue, len(fields))
	for name, value := range fields {
		item[name] = StringAttr(value)
	}
	return item
}

// PagedScan returns a Scan implementation that serves the given pages in
// order, chaining continuation cursors the way the real backend does: every
// page except the last carries a LastEvaluatedKey, and each request after the
// first must echo the prior page's key as ExclusiveStartKey.
//
// The returned function keeps per-call state and must only be used for one
// table's sequential scan.
func PagedScan(
	pages ...[]map[string]types.AttributeValue,
) func(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	var call int

	return func(_ context.Context, input *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
		if call >= len(pages) {
			return nil, fmt.Errorf("scan requested page %d of %d", call+1, len(pages))
		}
		if call == 0 && input.ExclusiveStartKey != nil {
			return nil, fmt.Errorf("first scan request carried a start key")
		}
		if call > 0 && input.ExclusiveStartKey == nil {
			return nil, fmt.Errorf("scan request %d missing start key", call+1)
		}

		page := pages[call]
		output := &dynamodb.ScanOutput{
			Items: page,
			Count: int32(len(page)),
		}
		if call < len(pages)-1 {
			output.LastEvaluatedKey = map[string]types.AttributeValue{
				"pk": StringAttr(fmt.Sprintf("cursor-%d", call)),
			}
		}

		call++
		return output, nil
	}
}
