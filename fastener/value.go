package fastener

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a catalog attribute: a number or a string.
type Value struct {
	num   float64
	str   string
	isNum bool
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{num: f, isNum: true} }

// Text returns a string Value.
func Text(s string) Value { return Value{str: s} }

// Float returns the numeric value and whether v is numeric.
func (v Value) Float() (float64, bool) { return v.num, v.isNum }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.isNum }

func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// UnmarshalYAML decodes a scalar node. Integer and float tags become
// numbers, anything else is kept as text.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("fastener: line %d: attribute must be a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		*v = Number(f)
	default:
		*v = Text(n.Value)
	}
	return nil
}

// MarshalYAML encodes v as a plain scalar.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.isNum {
		return v.num, nil
	}
	return v.str, nil
}
