package audit

import (
	"fmt"
	"io"

	"github.com/budgetbuddy/tableaudit/audittypes"
)

// Rendering caps, matching what an operator can usefully read in a terminal.
const (
	maxRenderedGroups  = 10
	maxRenderedMembers = 5
	maxRenderedOwners  = 10
)

// RenderReport writes a human-readable summary of a report to w: total record
// count, duplicate groups per identity field (capped), and the top owners by
// record count. Output is best effort; write errors are ignored.
func RenderReport(w io.Writer, report *audittypes.AnalysisReport) {
	fmt.Fprintf(w, "Table %s: %d records\n", report.Spec.Name, report.TotalRecords)

	for _, field := range report.Spec.IdentityFields {
		renderGroups(w, report, field)
	}

	if report.Spec.OwnerField == "" || len(report.Owners) == 0 {
		return
	}
	fmt.Fprintf(w, "  Records by %s (top %d):\n", report.Spec.OwnerField, maxRenderedOwners)
	for i, owner := range report.Owners {
		if i == maxRenderedOwners {
			break
		}
		fmt.Fprintf(w, "    %s: %d\n", owner.Owner, owner.Count)
	}
}

func renderGroups(w io.Writer, report *audittypes.AnalysisReport, field string) {
	groups := report.Duplicates[field]
	if len(groups) == 0 {
		fmt.Fprintf(w, "  no duplicate %s values\n", field)
		return
	}

	fmt.Fprintf(w, "  DUPLICATE %s VALUES: %d\n", field, len(groups))
	for i, group := range groups {
		if i == maxRenderedGroups {
			fmt.Fprintf(w, "    ... and %d more\n", len(groups)-maxRenderedGroups)
			break
		}
		fmt.Fprintf(w, "    %s = %s (%d records)\n", field, group.Value.Text(), len(group.Records))
		renderMembers(w, report.Spec.OwnerField, group)
	}
}

func renderMembers(w io.Writer, ownerField string, group audittypes.DuplicateGroup) {
	for i, rec := range group.Records {
		if i == maxRenderedMembers {
			fmt.Fprintf(w, "      ... and %d more\n", len(group.Records)-maxRenderedMembers)
			break
		}

		owner := audittypes.UnknownOwner
		if ownerField != "" {
			if value, ok := rec.Field(ownerField); ok {
				owner = value.Text()
			}
		}
		fmt.Fprintf(w, "      - %s: %s\n", ownerField, owner)
	}
}

// RenderCatalog writes a one-line status per catalog entry to w, in the style
// of a pre-flight check list.
func RenderCatalog(w io.Writer, entries []audittypes.CatalogEntry) {
	for _, entry := range entries {
		switch {
		case entry.Err != nil:
			fmt.Fprintf(w, "✗ %s: %v\n", entry.Name, entry.Err)
		case !entry.Exists:
			fmt.Fprintf(w, "⚠ %s does not exist\n", entry.Name)
		default:
			fmt.Fprintf(w, "✓ %s exists (item count: %d)\n", entry.Name, entry.ItemCount)
		}
	}
}
