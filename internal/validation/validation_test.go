package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	auditerrors "github.com/budgetbuddy/tableaudit/errors"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{name: "simple name", table: "Accounts"},
		{name: "prefixed name", table: "BudgetBuddy-Accounts"},
		{name: "dots and underscores", table: "audit_log.v2"},
		{name: "minimum length", table: "abc"},
		{name: "maximum length", table: strings.Repeat("a", 255)},
		{name: "empty", table: "", wantErr: true},
		{name: "too short", table: "ab", wantErr: true},
		{name: "too long", table: strings.Repeat("a", 256), wantErr: true},
		{name: "spaces", table: "my table", wantErr: true},
		{name: "slash", table: "tables/accounts", wantErr: true},
		{name: "unicode", table: "tablé", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTableName(tt.table)
			if tt.wantErr {
				assert.True(t, auditerrors.IsInvalidTableName(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
