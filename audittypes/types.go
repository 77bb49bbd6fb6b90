// Package audittypes provides shared type definitions for the table audit module.
package audittypes

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// ValueKind discriminates the arms of the Value variant.
type ValueKind int

// Value kinds for scalar item fields.
const (
	// KindAbsent marks the zero Value: the field was not present on the item.
	KindAbsent ValueKind = iota

	// KindString is a string field value.
	KindString

	// KindNumber is a numeric field value.
	KindNumber

	// KindBool is a boolean field value.
	KindBool
)

// Value is a single scalar field value read from a stored item.
// It is a comparable variant of string | number | boolean | absent, so it can
// be used directly as a map key when grouping records by field value.
// Backend wire-level attribute shapes never appear here; the scan layer
// converts them before records leave it.
type Value struct {
	// Kind identifies which arm of the variant is set.
	Kind ValueKind

	// Str holds the value for KindString, and the decimal lexical form for
	// KindNumber. Stored numbers are arbitrary precision; keeping the lexical
	// form avoids float rounding when values are compared for grouping.
	Str string

	// Bool holds the value for KindBool.
	Bool bool
}

// StringValue returns a Value holding a string.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue returns a Value holding a number in its decimal lexical form.
func NumberValue(n string) Value {
	return Value{Kind: KindNumber, Str: n}
}

// BoolValue returns a Value holding a boolean.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// IsAbsent reports whether the value is the absent sentinel.
func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// Text returns the lexical form of the value for display and owner bucketing.
// Absent values render as the empty string; callers that care about absence
// should check IsAbsent first.
func (v Value) Text() string {
	switch v.Kind {
	case KindString, KindNumber:
		return v.Str
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// MarshalJSON serializes the value as its native JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(json.Number(v.Str))
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// Record is one item read from a table: field name → scalar value.
// Records are immutable once produced by a scan; the audit engine only reads
// them. A field that is missing from the map has no value, which is distinct
// from any empty or sentinel value.
type Record map[string]Value

// Field looks up a field by name. The second return value reports whether the
// field is present; an absent field never participates in identity grouping.
func (r Record) Field(name string) (Value, bool) {
	v, ok := r[name]
	if !ok || v.IsAbsent() {
		return Value{}, false
	}
	return v, true
}

// DuplicateGroup is a set of two or more records sharing the same value for
// one identity field. Groups from different identity fields are never merged,
// even when they cover the same records.
type DuplicateGroup struct {
	// Field is the identity field the group was keyed on.
	Field string `json:"field"`

	// Value is the shared field value.
	Value Value `json:"value"`

	// Records are the group members, in the order the scan first saw them.
	Records []Record `json:"records"`
}

// UnknownOwner is the aggregation bucket for records that have no owner
// field. It is deliberately not a value that can collide with real owner IDs.
const UnknownOwner = "(unknown)"

// OwnerCount is one entry of the per-owner aggregate.
type OwnerCount struct {
	// Owner is the owner field value, or UnknownOwner.
	Owner string `json:"owner"`

	// Count is the number of records observed with that owner.
	Count int `json:"count"`
}

// TableSpec configures the audit of one table: which fields identify the same
// logical entity and which field attributes records to an owner.
type TableSpec struct {
	// Name is the table name.
	Name string `json:"name"`

	// IdentityFields are the field names used to group records that represent
	// the same entity. Each field is indexed independently.
	IdentityFields []string `json:"identityFields"`

	// OwnerField is the field name used for per-owner record counts.
	OwnerField string `json:"ownerField"`
}

// AnalysisReport is the result of one full audit of one table. A report is
// built fresh per analysis and fully populated before it is handed to
// rendering or persistence; the engine retains nothing across tables or runs.
type AnalysisReport struct {
	// RunID uniquely identifies the analysis run that produced the report.
	RunID string `json:"runId"`

	// Spec is the configuration the table was audited under.
	Spec TableSpec `json:"spec"`

	// ScannedAt is when the scan started.
	ScannedAt time.Time `json:"scannedAt"`

	// TotalRecords is the number of records observed by the scan. It equals
	// the sum of all page sizes the backend returned.
	TotalRecords int `json:"totalRecords"`

	// Duplicates maps each configured identity field to its duplicate groups.
	Duplicates map[string][]DuplicateGroup `json:"duplicates"`

	// Owners is the per-owner aggregate, sorted by descending count.
	Owners []OwnerCount `json:"owners"`
}

// CatalogEntry records the existence probe result for one candidate table.
type CatalogEntry struct {
	// Name is the table name that was probed.
	Name string `json:"name"`

	// Exists reports whether the table currently exists. A missing table is a
	// normal outcome, not an error.
	Exists bool `json:"exists"`

	// ItemCount is the backend's approximate item count for existing tables.
	// It is informational only; analysis totals come from the actual scan.
	ItemCount int64 `json:"itemCount"`

	// Err is set when the probe failed for a reason other than "not found".
	// A table with a probe error is excluded from analysis.
	Err error `json:"-"`
}

// Outcome is the per-table result of a multi-table analysis run: either a
// report or the error that prevented one, never both and never neither.
type Outcome struct {
	// Table is the table name.
	Table string

	// Report is the analysis report, nil when Err is set.
	Report *AnalysisReport

	// Err is the failure that aborted this table's analysis, nil on success.
	Err error
}

// ClientConfig holds the configuration for the audit client.
type ClientConfig struct {
	// Region is the AWS region for DynamoDB operations.
	Region string

	// MaxRetries is the maximum retry attempts for failed backend calls.
	MaxRetries int

	// Timeout bounds individual backend page fetches. Zero means no timeout.
	Timeout time.Duration

	// Concurrency is the number of tables analyzed in parallel.
	Concurrency int

	// PageLimit caps the number of items per scan page. Zero lets the
	// backend choose.
	PageLimit int32

	// Endpoint is a custom DynamoDB endpoint URL, for DynamoDB Local or
	// compatible services.
	Endpoint string

	// CustomAWSConfig overrides the default AWS configuration loading.
	CustomAWSConfig *aws.Config

	// CustomHTTPClient overrides the HTTP client used by the SDK.
	CustomHTTPClient *http.Client

	// Filesystem is the filesystem used for report persistence.
	Filesystem fs.Filesystem

	// Logger receives progress and failure logs.
	Logger *slog.Logger
}

// Option is a functional option for configuring the audit client.
type Option func(*ClientConfig)
