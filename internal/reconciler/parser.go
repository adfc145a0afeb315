package reconciler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-catalog/pkg/domain"
	"github.com/xuri/excelize/v2"
)

// ParseSheet reads the catalog worksheet into a snapshot. The sheet uses an
// indentation layout: a menu row carries its id in the first column, a
// submenu row in the second, a dish row in the third. Submenu and dish rows
// attach to the most recent row of the level above.
func ParseSheet(path, sheetName string) (Snapshot, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reconciler: open workbook: %w", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reconciler: read sheet %q: %w", sheetName, err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) (Snapshot, error) {
	snap := newSnapshot()

	var menuID, submenuID string
	for i, row := range rows {
		switch {
		case cell(row, 0) != "":
			menuID = cell(row, 0)
			snap.Menus[menuID] = MenuRecord{
				ID:          menuID,
				Title:       cell(row, 1),
				Description: cell(row, 2),
			}

		case cell(row, 1) != "":
			if menuID == "" {
				return Snapshot{}, fmt.Errorf("reconciler: row %d: submenu before any menu", i+1)
			}
			submenuID = cell(row, 1)
			snap.Submenus[submenuID] = SubmenuRecord{
				ID:          submenuID,
				Title:       cell(row, 2),
				Description: cell(row, 3),
				MenuID:      menuID,
			}

		case cell(row, 2) != "":
			if submenuID == "" {
				return Snapshot{}, fmt.Errorf("reconciler: row %d: dish before any submenu", i+1)
			}
			price, err := domain.ParsePrice(cell(row, 5))
			if err != nil {
				return Snapshot{}, fmt.Errorf("reconciler: row %d: %w", i+1, err)
			}
			discount := 0
			if raw := cell(row, 6); raw != "" {
				discount, err = strconv.Atoi(raw)
				if err != nil {
					return Snapshot{}, fmt.Errorf("reconciler: row %d: discount %q: %w", i+1, raw, err)
				}
			}
			snap.Dishes[cell(row, 2)] = DishRecord{
				ID:          cell(row, 2),
				Title:       cell(row, 3),
				Description: cell(row, 4),
				Price:       price,
				Discount:    discount,
				SubmenuID:   submenuID,
				MenuID:      menuID,
			}
		}
	}
	return snap, nil
}

// cell returns the trimmed value at index i, tolerating short rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
