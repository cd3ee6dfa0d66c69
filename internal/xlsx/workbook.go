// Package xlsx implements the repository interfaces on top of spreadsheet
// workbooks: one .xlsx file per collection, a single sheet with a header
// row and one row per record. Every write is a whole-collection
// read-modify-write; a per-collection mutex serializes writers within this
// process. Concurrent writers from separate processes can still lose
// updates, which is acceptable only for single-user deployments.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"issue-tracker-api/internal/metrics"
)

const (
	sheetName = "Sheet1"

	issuesFile   = "issues.xlsx"
	projectsFile = "projects.xlsx"
	commentsFile = "comments.xlsx"
)

// Store owns the workbook directory and the per-collection write locks
type Store struct {
	dir     string
	logger  *zap.Logger
	metrics *metrics.Metrics

	issuesMu   sync.Mutex
	projectsMu sync.Mutex
	commentsMu sync.Mutex
}

// NewStore opens (and if needed creates) the workbook data directory
func NewStore(dir string, logger *zap.Logger, m *metrics.Metrics) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{
		dir:     dir,
		logger:  logger,
		metrics: m,
	}, nil
}

func (s *Store) path(file string) string {
	return filepath.Join(s.dir, file)
}

// readSheet loads every row of a workbook as header-keyed maps. A missing
// file reads as an empty collection.
func (s *Store) readSheet(file string) ([]map[string]string, error) {
	path := s.path(file)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", file, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet from %s: %w", file, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// writeSheet rewrites the whole collection. The workbook is written to a
// temp file and renamed over the target so a successful return means the
// data is durable on disk.
func (s *Store) writeSheet(file string, headers []string, records []map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		row := make([]interface{}, len(headers))
		for j, header := range headers {
			row[j] = record[header]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	path := s.path(file)
	tmp := path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", file, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace workbook %s: %w", file, err)
	}
	return nil
}

// observe feeds the storage metrics, if metrics are wired
func (s *Store) observe(operation, collection string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.RecordStorageOp(operation, collection, time.Since(start), err)
	}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// joinList renders a list field into one workbook cell. Elements are
// comma-joined; validation upstream rejects elements containing commas.
func joinList(values []string) string {
	return strings.Join(values, ",")
}

// splitList parses a comma-joined cell back into a list
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, ",")
}

// formatTime renders a timestamp in the RFC 3339 form the board UI expects
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime reads a stored timestamp; empty cells parse to the zero time
func parseTime(cell string) (time.Time, error) {
	if cell == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, cell)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", cell, err)
	}
	return t, nil
}

// parseTimePtr reads an optional timestamp cell
func parseTimePtr(cell string) (*time.Time, error) {
	if cell == "" {
		return nil, nil
	}
	t, err := parseTime(cell)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
