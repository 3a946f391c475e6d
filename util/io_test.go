package util

import (
	"testing"
)

type CSVNodeRow struct {
	ID     int64 `csv:"id"`
	X      int64 `csv:"x"`
	Y      int64 `csv:"y"`
	Active bool  `csv:"active"`
}

func TestCSVNodeRows(t *testing.T) {
	file := "./testdata/nodes.csv"

	i := 0
	ReadCSVFromFile[CSVNodeRow](file, ';')(func(row CSVNodeRow) bool {
		if i == 0 {
			if row.ID != 1 || row.X != 0 || row.Y != 0 || row.Active != false {
				t.Errorf("row 0 = %v; want {1 0 0 false}", row)
			}
		} else if i == 1 {
			if row.ID != 2 || row.X != 3 || row.Y != 4 || row.Active != true {
				t.Errorf("row 1 = %v; want {2 3 4 true}", row)
			}
		} else if i == 2 {
			// empty active cell stays at the zero value
			if row.ID != 3 || row.Active != false {
				t.Errorf("row 2 = %v; want {3 3 4 false}", row)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
		return true
	})
	if i != 3 {
		t.Errorf("read %v rows; want 3", i)
	}
}
