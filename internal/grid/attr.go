package grid

import "fmt"

// AttrKey names one editable property of a cell.
type AttrKey string

// Attribute keys.
const (
	AttrType    AttrKey = "type"
	AttrName    AttrKey = "name"
	AttrBlocked AttrKey = "blocked"
	AttrFill    AttrKey = "style.fill"
	AttrStroke  AttrKey = "style.stroke"
	AttrText    AttrKey = "style.text"
)

// AttrKeys lists every attribute key.
var AttrKeys = []AttrKey{AttrType, AttrName, AttrBlocked, AttrFill, AttrStroke, AttrText}

// Valid returns true if the key names a known attribute.
func (k AttrKey) Valid() bool {
	for _, known := range AttrKeys {
		if k == known {
			return true
		}
	}
	return false
}

// NormalizeValue converts a value to the canonical Go type stored for key:
// CellType for AttrType (its string form is accepted), string for names and
// colours, bool for AttrBlocked.
func NormalizeValue(key AttrKey, value any) (any, error) {
	switch key {
	case AttrType:
		switch v := value.(type) {
		case CellType:
			if v > TypeCustom {
				return nil, fmt.Errorf("%w: cell type %d", ErrInvalidValue, v)
			}
			return v, nil
		case string:
			return ParseCellType(v)
		}
	case AttrName:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case AttrBlocked:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case AttrFill, AttrStroke, AttrText:
		if v, ok := value.(string); ok {
			if err := ValidateColor(v); err != nil {
				return nil, err
			}
			return v, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
	}
	return nil, fmt.Errorf("%w: %T for %s", ErrInvalidValue, value, key)
}

// FormatValue renders an attribute value as text for input widgets.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case CellType:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
