// Package analyze implements the single-pass audit engine.
// One traversal of a record stream builds one identity index per configured
// field, extracts duplicate groups, and tallies records per owner.
package analyze
