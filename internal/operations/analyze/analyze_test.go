package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbuddy/tableaudit/audittypes"
)

// rec builds a record of string fields.
func rec(fields map[string]string) audittypes.Record {
	r := make(audittypes.Record, len(fields))
	for name, value := range fields {
		r[name] = audittypes.StringValue(value)
	}
	return r
}

func TestPass_DuplicateIdentityValues(t *testing.T) {
	pass := NewPass([]string{"accountId"}, "userId")

	pass.Observe(rec(map[string]string{"accountId": "A", "userId": "u1"}))
	pass.Observe(rec(map[string]string{"accountId": "A", "userId": "u2"}))
	pass.Observe(rec(map[string]string{"accountId": "B", "userId": "u1"}))

	assert.Equal(t, 3, pass.Total())

	groups := pass.Duplicates()["accountId"]
	require.Len(t, groups, 1, "only the shared value should form a group")

	group := groups[0]
	assert.Equal(t, "accountId", group.Field)
	assert.Equal(t, audittypes.StringValue("A"), group.Value)
	require.Len(t, group.Records, 2)

	// Members keep first-seen order.
	first, ok := group.Records[0].Field("userId")
	require.True(t, ok)
	assert.Equal(t, "u1", first.Text())
	second, ok := group.Records[1].Field("userId")
	require.True(t, ok)
	assert.Equal(t, "u2", second.Text())
}

func TestPass_MissingIdentityFieldExcluded(t *testing.T) {
	pass := NewPass([]string{"plaidAccountId"}, "userId")

	// Two records without the field must not group under a synthetic key.
	pass.Observe(rec(map[string]string{"accountId": "A", "userId": "u1"}))
	pass.Observe(rec(map[string]string{"accountId": "B", "userId": "u1"}))
	pass.Observe(rec(map[string]string{"plaidAccountId": "p1", "userId": "u2"}))

	groups := pass.Duplicates()["plaidAccountId"]
	assert.Empty(t, groups)
	assert.Equal(t, 3, pass.Total(), "records missing the field still count toward the total")
}

func TestPass_OwnerTally(t *testing.T) {
	tests := []struct {
		name    string
		records []audittypes.Record
		want    []audittypes.OwnerCount
	}{
		{
			name: "counts by owner descending",
			records: []audittypes.Record{
				rec(map[string]string{"userId": "u1"}),
				rec(map[string]string{"userId": "u1"}),
				rec(map[string]string{"userId": "u2"}),
			},
			want: []audittypes.OwnerCount{
				{Owner: "u1", Count: 2},
				{Owner: "u2", Count: 1},
			},
		},
		{
			name: "missing owner goes to the unknown bucket",
			records: []audittypes.Record{
				rec(map[string]string{"userId": "u1"}),
				rec(map[string]string{"accountId": "A"}),
				rec(map[string]string{"accountId": "B"}),
			},
			want: []audittypes.OwnerCount{
				{Owner: audittypes.UnknownOwner, Count: 2},
				{Owner: "u1", Count: 1},
			},
		},
		{
			name: "ties break by owner for determinism",
			records: []audittypes.Record{
				rec(map[string]string{"userId": "zed"}),
				rec(map[string]string{"userId": "abe"}),
			},
			want: []audittypes.OwnerCount{
				{Owner: "abe", Count: 1},
				{Owner: "zed", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass := NewPass(nil, "userId")
			for _, r := range tt.records {
				pass.Observe(r)
			}
			assert.Equal(t, tt.want, pass.Owners())
		})
	}
}

func TestPass_OwnerCountsSumToTotal(t *testing.T) {
	pass := NewPass([]string{"id"}, "userId")
	records := []audittypes.Record{
		rec(map[string]string{"id": "1", "userId": "u1"}),
		rec(map[string]string{"id": "2", "userId": "u2"}),
		rec(map[string]string{"id": "2"}),
		rec(map[string]string{"userId": "u1"}),
		rec(map[string]string{}),
	}
	for _, r := range records {
		pass.Observe(r)
	}

	sum := 0
	for _, owner := range pass.Owners() {
		sum += owner.Count
	}
	assert.Equal(t, pass.Total(), sum)
}

// Every scanned record with a given field lands in exactly one bucket: a
// duplicate group, the unique values, or the absent set.
func TestPass_IndexPartitionsRecords(t *testing.T) {
	pass := NewPass([]string{"id"}, "userId")

	records := []audittypes.Record{
		rec(map[string]string{"id": "A"}),
		rec(map[string]string{"id": "A"}),
		rec(map[string]string{"id": "B"}),
		rec(map[string]string{"id": "C"}),
		rec(map[string]string{"id": "C"}),
		rec(map[string]string{"id": "C"}),
		rec(map[string]string{"other": "x"}),
	}
	for _, r := range records {
		pass.Observe(r)
	}

	inGroups := 0
	for _, group := range pass.Duplicates()["id"] {
		inGroups += len(group.Records)
	}

	absent := 1 // one record has no "id"
	unique := 1 // "B"
	assert.Equal(t, pass.Total(), inGroups+unique+absent)
}

func TestPass_FieldsIndexedIndependently(t *testing.T) {
	pass := NewPass([]string{"accountId", "plaidAccountId"}, "userId")

	// Duplicates by accountId but not by plaidAccountId; the engine must not
	// reconcile across fields.
	pass.Observe(rec(map[string]string{"accountId": "A", "plaidAccountId": "p1"}))
	pass.Observe(rec(map[string]string{"accountId": "A", "plaidAccountId": "p2"}))

	dups := pass.Duplicates()
	require.Len(t, dups["accountId"], 1)
	assert.Empty(t, dups["plaidAccountId"])
}

func TestPass_GroupOrderIsFirstSeen(t *testing.T) {
	pass := NewPass([]string{"id"}, "")

	pass.Observe(rec(map[string]string{"id": "later"}))
	pass.Observe(rec(map[string]string{"id": "early"}))
	pass.Observe(rec(map[string]string{"id": "early"}))
	pass.Observe(rec(map[string]string{"id": "later"}))

	groups := pass.Duplicates()["id"]
	require.Len(t, groups, 2)
	assert.Equal(t, audittypes.StringValue("later"), groups[0].Value)
	assert.Equal(t, audittypes.StringValue("early"), groups[1].Value)
}

func TestPass_MixedValueKindsDoNotCollide(t *testing.T) {
	pass := NewPass([]string{"flag"}, "")

	pass.Observe(audittypes.Record{"flag": audittypes.StringValue("true")})
	pass.Observe(audittypes.Record{"flag": audittypes.BoolValue(true)})

	// Same lexical form, different kinds: not duplicates of each other.
	assert.Empty(t, pass.Duplicates()["flag"])
}

func TestPass_EmptyStream(t *testing.T) {
	pass := NewPass([]string{"id"}, "userId")

	assert.Zero(t, pass.Total())
	assert.Empty(t, pass.Duplicates()["id"])
	assert.Empty(t, pass.Owners())
}
