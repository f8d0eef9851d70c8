package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/gridedit/internal/grid"
	"gopkg.in/yaml.v3"
)

// Definition is the decoded form of a layout file.
type Definition struct {
	Name  string    `yaml:"name"`
	Rows  []string  `yaml:"rows"`
	Cells []CellDef `yaml:"cells,omitempty"`

	// Source lines of rows and cells, when decoded from YAML.
	rowLines  []int
	cellLines []int
}

// CellDef overrides attributes of one occupied slot.
type CellDef struct {
	Row     int       `yaml:"row"`
	Col     int       `yaml:"col"`
	Type    string    `yaml:"type,omitempty"`
	Name    string    `yaml:"name,omitempty"`
	Blocked bool      `yaml:"blocked,omitempty"`
	Style   *StyleDef `yaml:"style,omitempty"`
}

// StyleDef is the YAML form of a style override.
type StyleDef struct {
	Fill   string `yaml:"fill,omitempty"`
	Stroke string `yaml:"stroke,omitempty"`
	Text   string `yaml:"text,omitempty"`
}

// Empty is the symbol of an empty slot.
const Empty = '.'

var symbols = map[rune]grid.CellType{
	'S': grid.TypeSeat,
	'_': grid.TypeAisle,
	'W': grid.TypeWall,
	'D': grid.TypeDoor,
	'C': grid.TypeCustom,
}

// Symbol returns the row symbol for a cell type.
func Symbol(t grid.CellType) rune {
	for r, st := range symbols {
		if st == t {
			return r
		}
	}
	return 'C'
}

// Load reads a layout file and builds its grid.
func Load(path string) (*grid.Grid, *Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading layout %s: %w", path, err)
	}

	parse := Parse
	if IsJSON(path) {
		parse = ParseJSON
	}
	g, def, err := parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, nil, err
	}
	return g, def, nil
}

// Parse decodes YAML layout data and builds its grid.
func Parse(data []byte) (*grid.Grid, *Definition, error) {
	def, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	g, err := def.Build()
	if err != nil {
		return nil, nil, err
	}
	return g, def, nil
}

// ParseJSON decodes JSON layout data and builds its grid.
func ParseJSON(data []byte) (*grid.Grid, *Definition, error) {
	def, err := DecodeJSON(data)
	if err != nil {
		return nil, nil, err
	}
	g, err := def.Build()
	if err != nil {
		return nil, nil, err
	}
	return g, def, nil
}

// Decode decodes YAML layout data without building it.
func Decode(data []byte) (*Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}

	def := &Definition{}
	if root.Kind == 0 {
		return def, nil
	}
	if err := root.Decode(def); err != nil {
		return nil, &ParseError{Line: root.Line, Message: err.Error(), Err: err}
	}
	def.rowLines = lines(sequence(&root, "rows"))
	cells := sequence(&root, "cells")
	if err := checkPositions(cells); err != nil {
		return nil, err
	}
	def.cellLines = lines(cells)
	return def, nil
}

// sequence returns the node under key in the top-level mapping, or nil.
func sequence(root *yaml.Node, key string) *yaml.Node {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == key {
			return doc.Content[i+1]
		}
	}
	return nil
}

// lines returns the source line of each item of seq.
func lines(seq *yaml.Node) []int {
	if seq == nil {
		return nil
	}
	out := make([]int, len(seq.Content))
	for i, item := range seq.Content {
		out[i] = item.Line
	}
	return out
}

// checkPositions rejects cell overrides that omit row or col. Decoding
// alone would leave them at zero and silently target the first slot.
func checkPositions(cells *yaml.Node) error {
	if cells == nil {
		return nil
	}
	for i, item := range cells.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		for _, key := range []string{"row", "col"} {
			if !hasKey(item, key) {
				return &ParseError{
					Line:    item.Line,
					Message: fmt.Sprintf("cell %d: missing %s", i, key),
					Err:     ErrMissingPosition,
				}
			}
		}
	}
	return nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

func lineAt(lines []int, i int) int {
	if i < len(lines) {
		return lines[i]
	}
	return 0
}

// Build creates the grid a definition describes.
func (d *Definition) Build() (*grid.Grid, error) {
	if len(d.Rows) == 0 {
		return nil, &ParseError{Message: ErrNoRows.Error(), Err: ErrNoRows}
	}

	cols := len([]rune(d.Rows[0]))
	g, err := grid.New(cols, len(d.Rows))
	if err != nil {
		return nil, &ParseError{Line: lineAt(d.rowLines, 0), Message: err.Error(), Err: err}
	}

	for row, line := range d.Rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, &ParseError{
				Line:    lineAt(d.rowLines, row),
				Message: fmt.Sprintf("row %d has %d cells, want %d", row, len(runes), cols),
				Err:     ErrRaggedRows,
			}
		}
		for col, r := range runes {
			if r == Empty {
				continue
			}
			t, ok := symbols[r]
			if !ok {
				return nil, &ParseError{
					Line:    lineAt(d.rowLines, row),
					Message: fmt.Sprintf("symbol %q at row %d col %d", r, row, col),
					Err:     ErrUnknownSymbol,
				}
			}
			if err := g.Put(g.Index(row, col), grid.NewCell(t)); err != nil {
				return nil, err
			}
		}
	}

	for i, c := range d.Cells {
		if err := applyOverride(g, c); err != nil {
			return nil, &ParseError{Line: lineAt(d.cellLines, i), Message: err.Error(), Err: err}
		}
	}
	return g, nil
}

func applyOverride(g *grid.Grid, c CellDef) error {
	index := g.Index(c.Row, c.Col)
	if index < 0 {
		return fmt.Errorf("%w: row %d col %d", ErrCellOutOfRange, c.Row, c.Col)
	}
	cell, err := g.At(index)
	if err != nil {
		return err
	}
	if cell == nil {
		return fmt.Errorf("%w: row %d col %d", ErrEmptyOverride, c.Row, c.Col)
	}

	set := func(key grid.AttrKey, value any) {
		if err == nil {
			err = cell.Set(key, value)
		}
	}
	if c.Type != "" {
		set(grid.AttrType, c.Type)
	}
	set(grid.AttrName, c.Name)
	set(grid.AttrBlocked, c.Blocked)
	if c.Style != nil {
		set(grid.AttrFill, c.Style.Fill)
		set(grid.AttrStroke, c.Style.Stroke)
		set(grid.AttrText, c.Style.Text)
	}
	if err != nil {
		return err
	}
	return g.Put(index, cell)
}

// FromGrid describes a grid as a layout definition. Cells whose attributes
// differ from a fresh cell of their type get an override entry.
func FromGrid(name string, g grid.Reader) *Definition {
	d := &Definition{Name: name, Rows: make([]string, g.Rows())}
	for row := 0; row < g.Rows(); row++ {
		var b strings.Builder
		for col := 0; col < g.Cols(); col++ {
			cell, _ := g.At(g.Index(row, col))
			if cell == nil {
				b.WriteRune(Empty)
				continue
			}
			b.WriteRune(Symbol(cell.Type))
			if def, ok := override(row, col, cell); ok {
				d.Cells = append(d.Cells, def)
			}
		}
		d.Rows[row] = b.String()
	}
	return d
}

func override(row, col int, cell *grid.Cell) (CellDef, bool) {
	if cell.Name == "" && !cell.Blocked && cell.Style.IsZero() {
		return CellDef{}, false
	}
	def := CellDef{Row: row, Col: col, Name: cell.Name, Blocked: cell.Blocked}
	if !cell.Style.IsZero() {
		def.Style = &StyleDef{Fill: cell.Style.Fill, Stroke: cell.Style.Stroke, Text: cell.Style.Text}
	}
	return def, true
}

// Encode renders a definition as YAML.
func (d *Definition) Encode() ([]byte, error) {
	return yaml.Marshal(d)
}

// Save writes g to path as a layout file. Paths ending in .json are
// written as JSON, everything else as YAML.
func Save(path, name string, g grid.Reader) error {
	def := FromGrid(name, g)
	encode := def.Encode
	if IsJSON(path) {
		encode = def.EncodeJSON
	}
	data, err := encode()
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing layout %s: %w", path, err)
	}
	return nil
}
