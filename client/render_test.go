package client

import (
	"panelpop/panel"
	"panelpop/proto"
	"reflect"
	"testing"
)

func testSnapshot() *panel.Snapshot {
	s := &panel.Snapshot{Width: 6, Height: 12}
	s.Cells = make([][]panel.CellSnapshot, s.Height)
	for y := range s.Cells {
		s.Cells[y] = make([]panel.CellSnapshot, s.Width)
		for x := range s.Cells[y] {
			s.Cells[y][x] = panel.CellSnapshot{Type: panel.NoTile, VisualY: float64(y)}
		}
	}
	return s
}

func emptyGrid(w, h int) [][]string {
	g := make([][]string, h)
	for y := range g {
		g[y] = make([]string, w)
		for x := range g[y] {
			g[y][x] = "  "
		}
	}
	return g
}

func TestLocalGrid(t *testing.T) {
	s := testSnapshot()
	s.Cells[0][0] = panel.CellSnapshot{Type: 0}
	s.Cells[0][1] = panel.CellSnapshot{Type: panel.NoTile, Garbage: true}
	s.Cells[3][2] = panel.CellSnapshot{Type: 5}
	s.CursorX, s.CursorY = 4, 5
	td := &templateData{Local: s}

	want := emptyGrid(6, 12)
	want[11][0] = "\x1b[7m\x1b[31m[]\x1b[0m" // red tile at bottom-left
	want[11][1] = "\x1b[7m\x1b[90m[]\x1b[0m" // garbage
	want[8][2] = "\x1b[7m\x1b[34m[]\x1b[0m"  // blue tile at row 3
	want[6][4] = "\x1b[4m  \x1b[24m"         // cursor cells
	want[6][5] = "\x1b[4m  \x1b[24m"

	got := localGrid(td)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	t.Run("localGrid with nil snapshot returns empty spaces", func(t *testing.T) {
		got := localGrid(&templateData{})
		if !reflect.DeepEqual(got, emptyGrid(6, 12)) {
			t.Errorf("want empty grid, got %v", got)
		}
	})
}

func TestRemoteGrid(t *testing.T) {
	s := testSnapshot()
	s.Cells[0][0] = panel.CellSnapshot{Type: 0}
	s.Cells[2][3] = panel.CellSnapshot{Type: panel.NoTile, Garbage: true}
	td := &templateData{Remote: &proto.GameMessage{Board: board2Proto(s)}}

	want := emptyGrid(6, 12)
	want[11][0] = "\x1b[7m\x1b[31m[]\x1b[0m"
	want[9][3] = "\x1b[7m\x1b[90m[]\x1b[0m"

	got := remoteGrid(td)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	t.Run("remoteGrid with nil message returns empty spaces", func(t *testing.T) {
		got := remoteGrid(&templateData{})
		if !reflect.DeepEqual(got, emptyGrid(6, 12)) {
			t.Errorf("want empty grid, got %v", got)
		}
	})
}

func TestBoard2Proto(t *testing.T) {
	s := testSnapshot()
	s.Cells[0][0] = panel.CellSnapshot{Type: 0}
	s.Cells[3][2] = panel.CellSnapshot{Type: 1}
	s.Cells[5][4] = panel.CellSnapshot{Type: panel.NoTile, Garbage: true}

	got := board2Proto(s)
	if len(got.GetRows()) != 12 {
		t.Fatalf("wanted 12 rows, got %d", len(got.GetRows()))
	}
	if c := got.GetRows()[0].GetCells()[0]; c != "R" {
		t.Errorf("wanted cell (0,0) to be %q, got %q", "R", c)
	}
	if c := got.GetRows()[3].GetCells()[2]; c != "G" {
		t.Errorf("wanted cell (2,3) to be %q, got %q", "G", c)
	}
	if c := got.GetRows()[5].GetCells()[4]; c != "#" {
		t.Errorf("wanted cell (4,5) to be %q, got %q", "#", c)
	}
	if c := got.GetRows()[1].GetCells()[1]; c != "" {
		t.Errorf("wanted empty cell to be %q, got %q", "", c)
	}
}

func TestVs(t *testing.T) {
	tests := []struct {
		lName, rName string
		want         string
	}{
		{"local", "remote", "     local <- vs -> remote    "},
		{"areallylongname", "short", " areallylo <- vs -> short     "},
		{"", "", "           <- vs ->           "},
	}
	for _, tt := range tests {
		t.Run(tt.lName+"_vs_"+tt.rName, func(t *testing.T) {
			if got := vs(tt.lName, tt.rName); got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	tmpl, err := loadTemplate()
	if err != nil {
		t.Fatalf("error loading template: %v", err)
	}
	if tmpl == nil {
		t.Fatal("wanted non-nil template")
	}
}
