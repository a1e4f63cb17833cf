package sheetstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"arc-checkin/internal/checkin"
)

// Store keeps the attendee table in one worksheet of an .xlsx workbook.
// Every call reopens the file, so out-of-band edits to the workbook are
// picked up on the next read; the mutex serializes all access within the
// process.
type Store struct {
	mu    sync.Mutex
	path  string
	sheet string
}

func New(path, sheet string) *Store {
	return &Store{path: path, sheet: sheet}
}

// Rows returns the full grid, header row included.
func (s *Store) Rows(ctx context.Context) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}
	return rows, nil
}

// SetCell writes one cell addressed by 0-based grid coordinates and saves
// the workbook.
func (s *Store) SetCell(ctx context.Context, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	// excelize addresses cells 1-based
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(s.sheet, ref, value); err != nil {
		return fmt.Errorf("set cell %s: %w", ref, err)
	}
	return f.Save()
}

// AppendRow adds one attendee row after the existing data. Used by the
// import tooling, not by request serving.
func (s *Store) AppendRow(ctx context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}

	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	ref, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(s.sheet, ref, &cells); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return f.Save()
}

// Provision creates the workbook and worksheet with the fixed header row if
// absent. Safe to run repeatedly.
func (s *Store) Provision(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, created, err := s.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(s.sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		if idx, err = f.NewSheet(s.sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", s.sheet, err)
		}
	} else if !created {
		// sheet already provisioned
		return nil
	}
	f.SetActiveSheet(idx)

	header := make([]interface{}, len(checkin.Header))
	for i, h := range checkin.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(s.sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// freeze the header row
	if err := f.SetPanes(s.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if created {
		if s.sheet != "Sheet1" {
			if err := f.DeleteSheet("Sheet1"); err != nil {
				return err
			}
		}
		if dir := filepath.Dir(s.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		return f.SaveAs(s.path)
	}
	return f.Save()
}

var _ interface {
	checkin.TableStore
	checkin.CellWriter
	checkin.Provisioner
} = (*Store)(nil)

func (s *Store) openOrCreate() (*excelize.File, bool, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return excelize.NewFile(), true, nil
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	return f, false, nil
}
