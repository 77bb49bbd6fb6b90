// Package internal contains private implementation details for the audit module.
// These packages are not intended for external use and may change without notice.
//
// The internal packages are organized as follows:
//   - dynamoapi: DynamoDB API interface for mocking
//   - operations: Core scan and analysis implementations
//   - validation: Input validation logic
//   - testutil: Test mocks and helpers
package internal
