package analyze

import (
	"sort"

	"github.com/budgetbuddy/tableaudit/audittypes"
)

// Pass accumulates identity indexes and owner tallies over a single traversal
// of a record stream. Every record is fed to Observe exactly once; the stream
// is never rescanned per field. A Pass is not safe for concurrent use; each
// table analysis owns a private Pass.
type Pass struct {
	identityFields []string
	ownerField     string
	indexes        map[string]*index
	owners         map[string]int
	total          int
}

// index is one identity field's mapping from field value to the records
// observed with that value, preserving first-seen order on both levels.
type index struct {
	members map[audittypes.Value][]audittypes.Record
	order   []audittypes.Value
}

// NewPass creates a Pass for the given identity fields and owner field.
func NewPass(identityFields []string, ownerField string) *Pass {
	indexes := make(map[string]*index, len(identityFields))
	for _, field := range identityFields {
		indexes[field] = &index{
			members: make(map[audittypes.Value][]audittypes.Record),
		}
	}

	return &Pass{
		identityFields: identityFields,
		ownerField:     ownerField,
		indexes:        indexes,
		owners:         make(map[string]int),
	}
}

// Observe feeds one record into every applicable index and the owner tally.
// A record missing an identity field is simply absent from that field's
// index; that is not an error and not itself a duplicate signal.
func (p *Pass) Observe(rec audittypes.Record) {
	p.total++

	for _, field := range p.identityFields {
		value, ok := rec.Field(field)
		if !ok {
			continue
		}

		idx := p.indexes[field]
		if _, seen := idx.members[value]; !seen {
			idx.order = append(idx.order, value)
		}
		idx.members[value] = append(idx.members[value], rec)
	}

	owner := audittypes.UnknownOwner
	if value, ok := rec.Field(p.ownerField); ok {
		owner = value.Text()
	}
	p.owners[owner]++
}

// Total returns the number of records observed.
func (p *Pass) Total() int {
	return p.total
}

// Duplicates returns, for each identity field, a group per field value shared
// by two or more records. Group member lists preserve first-seen order.
// Fields producing no duplicates map to an empty slice. Groups from
// different fields are reported independently, even when they overlap.
func (p *Pass) Duplicates() map[string][]audittypes.DuplicateGroup {
	out := make(map[string][]audittypes.DuplicateGroup, len(p.identityFields))

	for _, field := range p.identityFields {
		idx := p.indexes[field]
		groups := make([]audittypes.DuplicateGroup, 0)

		for _, value := range idx.order {
			members := idx.members[value]
			if len(members) < 2 {
				continue
			}
			groups = append(groups, audittypes.DuplicateGroup{
				Field:   field,
				Value:   value,
				Records: members,
			})
		}

		out[field] = groups
	}

	return out
}

// Owners returns the per-owner record counts sorted by descending count,
// ties broken by owner for determinism. Counts sum exactly to Total.
func (p *Pass) Owners() []audittypes.OwnerCount {
	counts := make([]audittypes.OwnerCount, 0, len(p.owners))
	for owner, n := range p.owners {
		counts = append(counts, audittypes.OwnerCount{Owner: owner, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Owner < counts[j].Owner
	})

	return counts
}
