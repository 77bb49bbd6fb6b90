package audit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budgetbuddy/tableaudit/audittypes"
	auditerrors "github.com/budgetbuddy/tableaudit/errors"
	"github.com/budgetbuddy/tableaudit/internal/operations/analyze"
	"github.com/budgetbuddy/tableaudit/internal/operations/scan"
	"github.com/budgetbuddy/tableaudit/internal/validation"
)

// ResolveTables probes each candidate table once, before any scanning begins,
// and returns one catalog entry per candidate in input order.
//
// A table that does not exist is a normal, non-fatal outcome: its entry has
// Exists false and no error. Any other probe failure is recorded on the entry
// as a CatalogError and logged; it excludes that table from analysis without
// affecting the other candidates.
//
// Example:
//
//	entries := client.ResolveTables(ctx, []string{"BudgetBuddy-Accounts", "Ghosts"})
//	for _, name := range audit.ExistingTables(entries) {
//	    ...
//	}
func (c *Client) ResolveTables(ctx context.Context, tables []string) []audittypes.CatalogEntry {
	entries := make([]audittypes.CatalogEntry, 0, len(tables))

	for _, table := range tables {
		entries = append(entries, c.probeTable(ctx, table))
	}

	return entries
}

// probeTable checks a single table's existence via DescribeTable.
func (c *Client) probeTable(ctx context.Context, table string) audittypes.CatalogEntry {
	entry := audittypes.CatalogEntry{Name: table}

	if err := validation.ValidateTableName(table); err != nil {
		entry.Err = auditerrors.NewCatalogError(table, err)
		c.logger.Error("invalid table name", "table", table, "error", err)
		return entry
	}

	output, err := c.dbClient.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		if auditerrors.IsTableNotFound(convertAWSError(err)) {
			c.logger.Info("table does not exist", "table", table)
			return entry
		}
		entry.Err = auditerrors.NewCatalogError(table, err)
		c.logger.Error("table probe failed", "table", table, "error", err)
		return entry
	}

	entry.Exists = true
	if output.Table != nil && output.Table.ItemCount != nil {
		// Approximate; the backend refreshes it periodically. Analysis totals
		// always come from the actual scan.
		entry.ItemCount = *output.Table.ItemCount
	}

	return entry
}

// ExistingTables returns the names of catalog entries that were confirmed to
// exist, preserving input order. Only these tables should be analyzed.
func ExistingTables(entries []audittypes.CatalogEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Exists && entry.Err == nil {
			names = append(names, entry.Name)
		}
	}
	return names
}

// AnalyzeTable performs one full audit of one table: an exhaustive scan feeds
// a single pass that builds every identity index and the owner tally, and the
// results are assembled into a fresh AnalysisReport.
//
// Any page-fetch failure aborts the analysis with an AnalysisError wrapping a
// ScanError; records observed before the failure are discarded and no partial
// report is produced.
func (c *Client) AnalyzeTable(ctx context.Context, spec audittypes.TableSpec) (*audittypes.AnalysisReport, error) {
	if err := validation.ValidateTableName(spec.Name); err != nil {
		return nil, auditerrors.NewAnalysisError(spec.Name, err)
	}

	scannedAt := time.Now().UTC()
	scanner := scan.New(c.dbClient)
	pass := analyze.NewPass(spec.IdentityFields, spec.OwnerField)

	stream := scanner.ScanAll(ctx, &scan.Config{
		Table:     spec.Name,
		PageLimit: c.pageLimit,
	})
	for result := range stream {
		if result.Err != nil {
			scanErr := auditerrors.NewScanError(spec.Name, result.Err)
			return nil, auditerrors.NewAnalysisError(spec.Name, scanErr)
		}
		pass.Observe(result.Record)
	}
	if err := ctx.Err(); err != nil {
		return nil, auditerrors.NewAnalysisError(spec.Name, err)
	}

	report := &audittypes.AnalysisReport{
		RunID:        uuid.NewString(),
		Spec:         spec,
		ScannedAt:    scannedAt,
		TotalRecords: pass.Total(),
		Duplicates:   pass.Duplicates(),
		Owners:       pass.Owners(),
	}

	c.logger.Info("table analyzed",
		"table", spec.Name,
		"records", report.TotalRecords,
		"run", report.RunID)

	return report, nil
}

// AnalyzeAll audits every table through a bounded worker pool and returns one
// outcome per table, in input order. Tables share no mutable state, so they
// may run concurrently; pagination within each table stays sequential.
//
// A failed table yields an outcome carrying its error in lieu of a report; it
// never aborts the run or silences the siblings.
func (c *Client) AnalyzeAll(ctx context.Context, specs []audittypes.TableSpec) []audittypes.Outcome {
	outcomes := make([]audittypes.Outcome, len(specs))

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for i, spec := range specs {
		g.Go(func() error {
			report, err := c.AnalyzeTable(ctx, spec)
			outcomes[i] = audittypes.Outcome{
				Table:  spec.Name,
				Report: report,
				Err:    err,
			}
			if err != nil {
				c.logger.Error("table analysis failed", "table", spec.Name, "error", err)
			}
			// Failures stay in the outcome; returning them would cancel
			// sibling tables.
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

// convertAWSError converts AWS SDK errors to our custom error types
func convertAWSError(err error) error {
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return auditerrors.ErrTableNotFound
	}

	// Check for error messages that contain specific error codes
	if strings.Contains(err.Error(), "ResourceNotFoundException") {
		return auditerrors.ErrTableNotFound
	}

	// Return the original error if we can't convert it
	return err
}
