// Package scan handles exhaustive table scan operations.
// This includes cursor-based pagination and streaming of items from
// DynamoDB tables.
//
// The package provides both paginated results and channel-based streaming
// for memory-efficient handling of large tables. Wire-level attribute
// shapes are converted to audit records here and never escape the package.
package scan
