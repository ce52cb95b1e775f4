package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"quotation_desk/internal/usecase/interfaces"
)

const flatFileExt = ".xlsx"

// FlatFileExcelStore keeps each table as a single-sheet workbook under dir:
// the first row holds the column names, every other row one record.
type FlatFileExcelStore struct {
	dir string
}

var _ interfaces.IFlatFileStore = (*FlatFileExcelStore)(nil)

func NewFlatFileExcelStore(dir string) *FlatFileExcelStore {
	return &FlatFileExcelStore{dir: dir}
}

func (s *FlatFileExcelStore) path(table string) string {
	return filepath.Join(s.dir, table+flatFileExt)
}

func (s *FlatFileExcelStore) ReadTable(ctx context.Context, table string) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.path(table))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", table)
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return []map[string]any{}, nil
	}

	header := grid[0]
	rows := make([]map[string]any, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		if isBlankRow(cells) {
			continue
		}
		row := make(map[string]any, len(header))
		for i, col := range header {
			if strings.TrimSpace(col) == "" {
				continue
			}
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteTable replaces the whole workbook. The file is written next to the
// target and renamed into place so readers never see a partial workbook.
func (s *FlatFileExcelStore) WriteTable(ctx context.Context, table string, columns []string, rows []map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		values := make([]any, len(columns))
		for j, c := range columns {
			values[j] = row[c]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	target := s.path(table)
	tmp := target + ".tmp" + flatFileExt
	if err := f.SaveAs(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Exists reports whether the table file is present.
func (s *FlatFileExcelStore) Exists(table string) bool {
	_, err := os.Stat(s.path(table))
	return err == nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
