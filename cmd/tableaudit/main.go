// Command tableaudit reviews the BudgetBuddy DynamoDB tables: it checks which
// tables exist, scans each one exhaustively, reports duplicate entities and
// per-user record counts, and optionally writes the full reports as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	audit "github.com/budgetbuddy/tableaudit"
	"github.com/budgetbuddy/tableaudit/audittypes"
)

func main() {
	region := flag.String("region", "us-east-1", "AWS region")
	prefix := flag.String("table-prefix", "BudgetBuddy", "table name prefix")
	outputDir := flag.String("output-dir", "", "directory for JSON report files (optional)")
	concurrency := flag.Int("concurrency", 4, "number of tables analyzed in parallel")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), logger, *region, *prefix, *outputDir, *concurrency); err != nil {
		logger.Error("review failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, region, prefix, outputDir string, concurrency int) error {
	client, err := audit.New(
		audit.WithRegion(region),
		audit.WithConcurrency(concurrency),
		audit.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	specs := tableSpecs(prefix)

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}

	entries := client.ResolveTables(ctx, names)
	audit.RenderCatalog(os.Stdout, entries)

	existing := make(map[string]bool)
	for _, name := range audit.ExistingTables(entries) {
		existing[name] = true
	}

	var toAnalyze []audittypes.TableSpec
	for _, spec := range specs {
		if existing[spec.Name] {
			toAnalyze = append(toAnalyze, spec)
		}
	}

	failed := 0
	for _, outcome := range client.AnalyzeAll(ctx, toAnalyze) {
		if outcome.Err != nil {
			failed++
			continue
		}

		fmt.Println()
		audit.RenderReport(os.Stdout, outcome.Report)

		if outputDir != "" {
			if err := client.SaveReport(outcome.Report, outputDir); err != nil {
				logger.Error("report not saved", "table", outcome.Table, "error", err)
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d tables failed", failed, len(toAnalyze))
	}
	return nil
}

// tableSpecs returns the audit configuration for each BudgetBuddy table:
// which fields identify the same logical entity and which field attributes
// records to a user.
func tableSpecs(prefix string) []audittypes.TableSpec {
	return []audittypes.TableSpec{
		{Name: prefix + "-Users", IdentityFields: []string{"userId", "email"}, OwnerField: "userId"},
		{Name: prefix + "-Accounts", IdentityFields: []string{"accountId", "plaidAccountId"}, OwnerField: "userId"},
		{Name: prefix + "-Transactions", IdentityFields: []string{"transactionId", "plaidTransactionId"}, OwnerField: "userId"},
		{Name: prefix + "-Budgets", IdentityFields: []string{"budgetId"}, OwnerField: "userId"},
		{Name: prefix + "-Goals", IdentityFields: []string{"goalId"}, OwnerField: "userId"},
		{Name: prefix + "-AuditLogs", IdentityFields: []string{"logId"}, OwnerField: "userId"},
	}
}
