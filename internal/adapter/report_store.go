package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/lintgate/fnlen/internal/model"
)

// reportFileName is the file written inside the reports directory.
const reportFileName = "report.json"

// ReportStore persists and retrieves scan reports so a check run can be
// reviewed later without rescanning.
type ReportStore interface {
	Save(dir m.Path, report m.RunReport) error
	Load(dir m.Path) (m.RunReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore backed by a JSON file on disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// Save writes the report as indented JSON, creating the directory if needed.
func (rs *reportStore) Save(dir m.Path, report m.RunReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Load reads the last saved report from dir.
func (rs *reportStore) Load(dir m.Path) (m.RunReport, error) {
	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}
