package audit

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/budgetbuddy/tableaudit/audittypes"
)

// SaveReport serializes a report, including full duplicate-group membership,
// to <dir>/<table>-analysis.json through the client's filesystem. The
// directory is created if it does not exist.
func (c *Client) SaveReport(report *audittypes.AnalysisReport, dir string) error {
	c.mu.RLock()
	filesystem := c.fs
	c.mu.RUnlock()

	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save report for %s: %w", report.Spec.Name, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("save report for %s: encode: %w", report.Spec.Name, err)
	}

	name := filepath.Join(dir, report.Spec.Name+"-analysis.json")
	if err := filesystem.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("save report for %s: %w", report.Spec.Name, err)
	}

	return nil
}
