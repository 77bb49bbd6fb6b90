package audit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbuddy/tableaudit/audittypes"
	"github.com/budgetbuddy/tableaudit/internal/testutil"
)

func TestRenderReport(t *testing.T) {
	mock := testutil.NewMockBuilder().
		WithPagedScan(accountPages()...).
		Build()

	report, err := NewWithClient(mock).AnalyzeTable(context.Background(), accountSpec("Accounts"))
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderReport(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "Table Accounts: 3 records")
	assert.Contains(t, out, "DUPLICATE accountId VALUES: 1")
	assert.Contains(t, out, "accountId = A (2 records)")
	assert.Contains(t, out, "no duplicate plaidAccountId values")
	assert.Contains(t, out, "Records by userId")
	assert.Contains(t, out, "u1: 2")
}

func TestRenderReport_CapsLongListings(t *testing.T) {
	report := &audittypes.AnalysisReport{
		Spec:       audittypes.TableSpec{Name: "Big", IdentityFields: []string{"id"}},
		Duplicates: map[string][]audittypes.DuplicateGroup{"id": manyGroups(15)},
	}

	var buf bytes.Buffer
	RenderReport(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "DUPLICATE id VALUES: 15")
	assert.Contains(t, out, "... and 5 more")
	assert.Equal(t, maxRenderedGroups, strings.Count(out, "(2 records)"))
}

func manyGroups(n int) []audittypes.DuplicateGroup {
	groups := make([]audittypes.DuplicateGroup, 0, n)
	for i := 0; i < n; i++ {
		value := audittypes.StringValue(strings.Repeat("x", i+1))
		member := audittypes.Record{"id": value}
		groups = append(groups, audittypes.DuplicateGroup{
			Field:   "id",
			Value:   value,
			Records: []audittypes.Record{member, member},
		})
	}
	return groups
}

func TestRenderCatalog(t *testing.T) {
	entries := []audittypes.CatalogEntry{
		{Name: "Accounts", Exists: true, ItemCount: 42},
		{Name: "Ghosts"},
		{Name: "Broken", Err: assert.AnError},
	}

	var buf bytes.Buffer
	RenderCatalog(&buf, entries)
	out := buf.String()

	assert.Contains(t, out, "Accounts exists (item count: 42)")
	assert.Contains(t, out, "Ghosts does not exist")
	assert.Contains(t, out, "Broken")
}
