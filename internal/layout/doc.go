// Package layout reads and writes grid layout files.
//
// A layout is a YAML document describing a rectangular grid row by row,
// one symbol per slot:
//
//	name: Hall A
//	rows:
//	  - "WWDWW"
//	  - "S_S.S"
//	cells:
//	  - {row: 1, col: 0, name: A1, style: {fill: "#ff0000"}}
//
// Symbols are S (seat), _ (aisle), W (wall), D (door), C (custom) and
// . (empty). Entries under cells override attributes of occupied slots
// and must give both row and col.
//
// Watcher reports changes to a layout file so it can be reloaded.
package layout
