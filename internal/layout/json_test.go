package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const hallJSON = `{
  "name": "Hall A",
  "rows": ["WWDWW", "S_S.S"],
  "cells": [
    {"row": 1, "col": 0, "name": "A1", "blocked": true},
    {"row": 1, "col": 4, "style": {"fill": "#ff0000"}}
  ]
}`

func TestParseJSONMatchesYAML(t *testing.T) {
	fromJSON, def, err := ParseJSON([]byte(hallJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	fromYAML, _, err := Parse([]byte(hall))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Name != "Hall A" {
		t.Errorf("Name = %q, want Hall A", def.Name)
	}
	if !fromJSON.Equal(fromYAML) {
		t.Error("JSON and YAML layouts build different grids")
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  error
		wantLine int
	}{
		{"malformed", `{"rows": [`, ErrInvalidJSON, 0},
		{"not object", `["S"]`, ErrInvalidJSON, 1},
		{"rows not array", "{\n\"rows\": \"S\"}", ErrInvalidJSON, 2},
		{"row not string", "{\"rows\": [\n1]}", ErrInvalidJSON, 2},
		{"missing col", "{\"rows\": [\"S\"],\n\"cells\": [{\"row\": 0}]}", ErrMissingPosition, 2},
		{"row not number", "{\"rows\": [\"S\"],\n\"cells\": [{\"row\": \"0\", \"col\": 0}]}", ErrInvalidJSON, 2},
		{"blocked not bool", "{\"rows\": [\"S\"], \"cells\": [\n{\"row\": 0, \"col\": 0, \"blocked\": \"yes\"}]}", ErrInvalidJSON, 2},
		{"ragged", "{\"rows\": [\"SS\",\n\"S\"]}", ErrRaggedRows, 2},
		{"no rows", `{"name": "x"}`, ErrNoRows, 0},
		{"empty override", "{\"rows\": [\".\"],\n\"cells\": [{\"row\": 0, \"col\": 0}]}", ErrEmptyOverride, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseJSON([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	g, _, err := Parse([]byte(hall))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := FromGrid("Hall A", g).EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	again, def, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON of encoded layout failed: %v\n%s", err, data)
	}
	if !again.Equal(g) {
		t.Errorf("round trip changed grid:\n%s", data)
	}
	if def.Name != "Hall A" || len(def.Cells) != 2 {
		t.Errorf("definition = %+v", def)
	}
}

func TestSaveJSONByExtension(t *testing.T) {
	g, _, err := Parse([]byte(hall))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hall.JSON")
	if err := Save(path, "json", g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Fatalf("saved data is not JSON: %s", data)
	}

	loaded, def, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if def.Name != "json" || !loaded.Equal(g) {
		t.Error("loaded layout differs")
	}
}

func TestIsJSON(t *testing.T) {
	tests := map[string]bool{
		"a.json":      true,
		"a.JSON":      true,
		"a.yaml":      false,
		"a.json.yaml": false,
		"json":        false,
	}
	for path, want := range tests {
		if got := IsJSON(path); got != want {
			t.Errorf("IsJSON(%q) = %v, want %v", path, got, want)
		}
	}
}
