package layout

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// IsJSON reports whether path names a JSON layout file.
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// DecodeJSON decodes JSON layout data without building it.
// The document has the same shape as the YAML form.
func DecodeJSON(data []byte) (*Definition, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Message: "invalid JSON", Err: ErrInvalidJSON}
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &ParseError{Line: 1, Message: "layout must be an object", Err: ErrInvalidJSON}
	}

	def := &Definition{}
	if name := doc.Get("name"); name.Exists() {
		if name.Type != gjson.String {
			return nil, jsonError(data, name, "name must be a string")
		}
		def.Name = name.String()
	}

	if rows := doc.Get("rows"); rows.Exists() {
		if !rows.IsArray() {
			return nil, jsonError(data, rows, "rows must be an array")
		}
		for _, row := range rows.Array() {
			if row.Type != gjson.String {
				return nil, jsonError(data, row, "row must be a string")
			}
			def.Rows = append(def.Rows, row.String())
			def.rowLines = append(def.rowLines, lineOf(data, row.Index))
		}
	}

	if cells := doc.Get("cells"); cells.Exists() {
		if !cells.IsArray() {
			return nil, jsonError(data, cells, "cells must be an array")
		}
		for _, item := range cells.Array() {
			c, err := decodeCellJSON(data, item)
			if err != nil {
				return nil, err
			}
			def.Cells = append(def.Cells, c)
			def.cellLines = append(def.cellLines, lineOf(data, item.Index))
		}
	}
	return def, nil
}

type stringField struct {
	key string
	dst *string
}

func decodeCellJSON(data []byte, item gjson.Result) (CellDef, error) {
	if !item.IsObject() {
		return CellDef{}, jsonError(data, item, "cell must be an object")
	}

	var c CellDef
	for _, f := range []struct {
		key string
		dst *int
	}{{"row", &c.Row}, {"col", &c.Col}} {
		v := item.Get(f.key)
		if !v.Exists() {
			pe := jsonError(data, item, "missing "+f.key)
			pe.Err = ErrMissingPosition
			return CellDef{}, pe
		}
		if v.Type != gjson.Number {
			return CellDef{}, jsonError(data, item, f.key+" must be a number")
		}
		*f.dst = int(v.Int())
	}

	strs := []stringField{{"type", &c.Type}, {"name", &c.Name}}
	if style := item.Get("style"); style.Exists() {
		if !style.IsObject() {
			return CellDef{}, jsonError(data, style, "style must be an object")
		}
		c.Style = &StyleDef{}
		strs = append(strs,
			stringField{"style.fill", &c.Style.Fill},
			stringField{"style.stroke", &c.Style.Stroke},
			stringField{"style.text", &c.Style.Text},
		)
	}
	for _, f := range strs {
		v := item.Get(f.key)
		if !v.Exists() {
			continue
		}
		if v.Type != gjson.String {
			return CellDef{}, jsonError(data, v, f.key+" must be a string")
		}
		*f.dst = v.String()
	}

	if blocked := item.Get("blocked"); blocked.Exists() {
		if !blocked.IsBool() {
			return CellDef{}, jsonError(data, blocked, "blocked must be a boolean")
		}
		c.Blocked = blocked.Bool()
	}
	return c, nil
}

func jsonError(data []byte, at gjson.Result, msg string) *ParseError {
	return &ParseError{Line: lineOf(data, at.Index), Message: msg, Err: ErrInvalidJSON}
}

// lineOf returns the 1-based line of byte offset off, or 0 when unknown.
func lineOf(data []byte, off int) int {
	if off <= 0 || off > len(data) {
		return 0
	}
	return bytes.Count(data[:off], []byte{'\n'}) + 1
}

// EncodeJSON renders a definition as JSON.
func (d *Definition) EncodeJSON() ([]byte, error) {
	doc, err := sjson.SetBytes([]byte(`{}`), "name", d.Name)
	if err != nil {
		return nil, err
	}
	rows := d.Rows
	if rows == nil {
		rows = []string{}
	}
	if doc, err = sjson.SetBytes(doc, "rows", rows); err != nil {
		return nil, err
	}
	if len(d.Cells) == 0 {
		return doc, nil
	}

	if doc, err = sjson.SetRawBytes(doc, "cells", []byte(`[]`)); err != nil {
		return nil, err
	}
	for _, c := range d.Cells {
		cell, err := encodeCellJSON(c)
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "cells.-1", cell); err != nil {
			return nil, fmt.Errorf("appending cell %d,%d: %w", c.Row, c.Col, err)
		}
	}
	return doc, nil
}

func encodeCellJSON(c CellDef) ([]byte, error) {
	type field struct {
		path  string
		value any
		set   bool
	}
	fields := []field{
		{"row", c.Row, true},
		{"col", c.Col, true},
		{"type", c.Type, c.Type != ""},
		{"name", c.Name, c.Name != ""},
		{"blocked", c.Blocked, c.Blocked},
	}
	if c.Style != nil {
		fields = append(fields,
			field{"style.fill", c.Style.Fill, c.Style.Fill != ""},
			field{"style.stroke", c.Style.Stroke, c.Style.Stroke != ""},
			field{"style.text", c.Style.Text, c.Style.Text != ""},
		)
	}

	cell := []byte(`{}`)
	for _, f := range fields {
		if !f.set {
			continue
		}
		var err error
		if cell, err = sjson.SetBytes(cell, f.path, f.value); err != nil {
			return nil, err
		}
	}
	return cell, nil
}
