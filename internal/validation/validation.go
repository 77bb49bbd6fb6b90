// Package validation provides centralized input validation logic.
// Table names are validated before any backend call so configuration
// mistakes surface as invalid-input errors rather than opaque SDK failures.
package validation

import (
	"fmt"

	auditerrors "github.com/budgetbuddy/tableaudit/errors"
)

// DynamoDB table name length limits.
const (
	minTableNameLength = 3
	maxTableNameLength = 255
)

// ValidateTableName validates a table name against DynamoDB naming rules.
// Returns ErrInvalidTableName if the name is invalid.
func ValidateTableName(table string) error {
	if len(table) < minTableNameLength {
		return fmt.Errorf("%w: %q must be at least %d characters",
			auditerrors.ErrInvalidTableName, table, minTableNameLength)
	}

	if len(table) > maxTableNameLength {
		return fmt.Errorf("%w: %q exceeds %d characters",
			auditerrors.ErrInvalidTableName, table, maxTableNameLength)
	}

	for _, r := range table {
		if !isTableNameRune(r) {
			return fmt.Errorf("%w: %q may only contain letters, digits, '_', '.' and '-'",
				auditerrors.ErrInvalidTableName, table)
		}
	}

	return nil
}

func isTableNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '.' || r == '-':
		return true
	default:
		return false
	}
}
