// Package audit provides a high-level Go module for auditing DynamoDB tables.
// It scans every item in each configured table, detects duplicate entities by
// one or more identity fields, and aggregates per-owner record counts into an
// analysis report.
//
// The module emphasizes exhaustive, single-pass analysis: each table is
// paginated through exactly once, all identity indexes and owner tallies are
// built during that one traversal, and a failure in one table never prevents
// the others from being analyzed.
//
// Key features:
//   - Simple, zero-configuration usage with AWS credential chain
//   - Progressive enhancement through functional options
//   - Cursor-driven pagination with no page-size assumptions
//   - Concurrent multi-table analysis with per-table fault isolation
//   - Report rendering and JSON persistence collaborators
//
// Example usage:
//
//	client, err := audit.New(audit.WithRegion("us-east-1"))
//	if err != nil {
//	    return err
//	}
//
//	report, err := client.AnalyzeTable(ctx, audittypes.TableSpec{
//	    Name:           "BudgetBuddy-Accounts",
//	    IdentityFields: []string{"accountId", "plaidAccountId"},
//	    OwnerField:     "userId",
//	})
//	if err != nil {
//	    return err
//	}
//	audit.RenderReport(os.Stdout, report)
package audit
