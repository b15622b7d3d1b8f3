package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"panelpop/panel"
	"panelpop/proto"
	"strings"
	"sync"
	"text/template"
)

const (
	// ASCII colors.
	Red     = "31"
	Green   = "32"
	Yellow  = "33"
	Blue    = "34"
	Magenta = "35"
	Cyan    = "36"
	Gray    = "90"

	resetPos = "\033[H" // Reset cursor position to 0,0
)

//go:embed "layout.tmpl"
var layout string

// colorMap assigns each tile type its terminal color. Six entries for the
// default tile count; extra types wrap around.
var colorMap = []string{Red, Green, Cyan, Yellow, Magenta, Blue}

// letterMap is the wire encoding of tile types for the remote board.
var letterMap = []string{"R", "G", "C", "Y", "M", "B"}

const garbageCell = "#"

type templateData struct {
	Local  *panel.Snapshot
	Remote *proto.GameMessage
	Name   string

	mu sync.Mutex
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(l *slog.Logger, name string) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:       os.Stdout,
		logger:       l,
		template:     tmp,
		templateData: &templateData{Name: name},
	}, nil
}

func (r *render) lobby() {
	fmt.Fprint(r.writer, "\033[8;7H+--------------------------------------+")
	fmt.Fprint(r.writer, "\033[9;7H|         Welcome to Panel Pop         |")
	fmt.Fprint(r.writer, "\033[10;7H|                                      |")
	fmt.Fprint(r.writer, "\033[11;7H|      (p)lay   (o)nline   (q)uit      |")
	fmt.Fprint(r.writer, "\033[12;7H+--------------------------------------+")
}

func (r *render) local(s *panel.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templateData.Local = s
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in local()", slog.String("error", err.Error()))
	}
	if s != nil && s.GameOver {
		r.lobby()
		fmt.Fprint(r.writer, "\033[9;7H|             Game Over :)             |")
	}
}

func (r *render) remote(m *proto.GameMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templateData.Remote = m
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in remote()", slog.String("error", err.Error()))
	}
}

func (r *render) waiting() {
	fmt.Fprint(r.writer, "\033[9;7H|       waiting for opponent...        |")
	fmt.Fprint(r.writer, "\033[11;7H|              (c)ancel                |")
}

func (r *render) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templateData.Local = nil
	r.templateData.Remote = nil
	fmt.Fprint(r.writer, "\033[2J")
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"localGrid":  localGrid,
		"remoteGrid": remoteGrid,
		"localScore": localScore,
		"localLevel": localLevel,
		"pending":    pending,
		"remoteName": remoteName,
		"vs":         vs,
	}

	// we use the console raw so new lines don't automatically transform into
	// carriage return. to fix that we add a carriage return to every new
	// line in the layout.
	layout = strings.ReplaceAll(layout, "\n", "\r\n")
	layout = strings.ReplaceAll(layout, "Panel Pop", "\033[1mPanel Pop\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(layout)
}

func tileCell(tt panel.TileType) string {
	c := colorMap[int(tt)%len(colorMap)]
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", c)
}

// localGrid renders the player's board top row first. The simulation keeps
// row 0 at the bottom, so the rows flip here.
func localGrid(t *templateData) [][]string {
	w, h := 6, 12
	if t.Local != nil {
		w, h = t.Local.Width, t.Local.Height
	}
	rendered := make([][]string, h)
	for i := range rendered {
		rendered[i] = make([]string, w)
		for j := range rendered[i] {
			rendered[i][j] = "  "
		}
	}
	if t.Local == nil {
		return rendered
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cs := t.Local.Cells[y][x]
			out := "  "
			switch {
			case cs.Garbage:
				out = fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", Gray)
			case cs.Type != panel.NoTile:
				out = tileCell(cs.Type)
			}
			rendered[h-1-y][x] = out
		}
	}

	// the cursor underlines the two cells it covers
	cy, cx := t.Local.CursorY, t.Local.CursorX
	for _, x := range []int{cx, cx + 1} {
		if x < w {
			rendered[h-1-cy][x] = "\x1b[4m" + rendered[h-1-cy][x] + "\x1b[24m"
		}
	}
	return rendered
}

// remoteGrid renders the opponent's board from the wire encoding.
func remoteGrid(t *templateData) [][]string {
	w, h := 6, 12
	rendered := make([][]string, h)
	for i := range rendered {
		rendered[i] = make([]string, w)
		for j := range rendered[i] {
			rendered[i][j] = "  "
		}
	}
	if t.Remote == nil || t.Remote.GetBoard() == nil {
		return rendered
	}
	rows := t.Remote.GetBoard().GetRows()
	for y := 0; y < h && y < len(rows); y++ {
		cells := rows[y].GetCells()
		for x := 0; x < w && x < len(cells); x++ {
			out := "  "
			switch v := cells[x]; {
			case v == garbageCell:
				out = fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", Gray)
			case v != "":
				for i, letter := range letterMap {
					if v == letter {
						out = tileCell(panel.TileType(i))
						break
					}
				}
			}
			rendered[h-1-y][x] = out
		}
	}
	return rendered
}

func localScore(t *templateData) int {
	if t.Local == nil {
		return 0
	}
	return t.Local.Score
}

func localLevel(t *templateData) int {
	if t.Local == nil {
		return 1
	}
	return t.Local.Level
}

func pending(t *templateData) int {
	if t.Local == nil {
		return 0
	}
	return t.Local.PendingGarbage
}

func remoteName(t *templateData) string {
	if t.Remote == nil {
		return ""
	}
	return t.Remote.GetName()
}

func vs(lName, rName string) string {
	maxL := 9
	l := len(lName)
	switch {
	case l > maxL:
		lName = lName[:maxL]
	case l < maxL:
		lName = strings.Repeat(" ", maxL-len(lName)) + lName
	}

	r := len(rName)
	switch {
	case r > maxL:
		rName = rName[:maxL]
	case r < maxL:
		rName += strings.Repeat(" ", maxL-len(rName))
	}
	return fmt.Sprintf(" %s <- vs -> %s ", lName, rName)
}

// board2Proto encodes the local board for the wire: one letter per tile
// type, "#" for garbage, empty string for empty cells.
func board2Proto(s *panel.Snapshot) *proto.Board {
	rendered := &proto.Board{Rows: make([]*proto.Row, s.Height)}
	for i := range rendered.Rows {
		rendered.Rows[i] = &proto.Row{Cells: make([]string, s.Width)}
	}
	for y, row := range s.Cells {
		for x, cs := range row {
			switch {
			case cs.Garbage:
				rendered.Rows[y].Cells[x] = garbageCell
			case cs.Type != panel.NoTile:
				rendered.Rows[y].Cells[x] = letterMap[int(cs.Type)%len(letterMap)]
			}
		}
	}
	return rendered
}
