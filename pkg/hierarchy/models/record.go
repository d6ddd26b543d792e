package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Cell is one named field of a Record.
type Cell struct {
	// Name is the field name.
	Name string
	// Value is the field value.
	Value Value
}

// Record is a single dataset row. Cells keep their declaration order, which
// drives default dimension order during field inference.
type Record []Cell

// MustRecord builds a Record from alternating name/value arguments.
// Values may be string, int, int64 or float64. It panics on anything else.
func MustRecord(pairs ...any) Record {
	if len(pairs)%2 != 0 {
		panic("models: MustRecord needs name/value pairs")
	}
	r := make(Record, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("models: field name %v is not a string", pairs[i]))
		}
		var v Value
		switch x := pairs[i+1].(type) {
		case string:
			v = TextValue(x)
		case int:
			v = NumberValue(float64(x))
		case int64:
			v = NumberValue(float64(x))
		case float64:
			v = NumberValue(x)
		case Value:
			v = x
		default:
			panic(fmt.Sprintf("models: unsupported value %v (%T) for field %q", x, x, name))
		}
		r = append(r, Cell{Name: name, Value: v})
	}
	return r
}

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for _, c := range r {
		if c.Name == name {
			return c.Value, true
		}
	}
	return Value{}, false
}

// Names returns the field names in declaration order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the record declares the named field.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// MarshalJSON encodes the record as an object with fields in order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		val, err := c.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be an object, got %v", tok)
	}

	var out Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		out = append(out, Cell{Name: name, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: record must be a mapping", node.Line)
	}
	out := make(Record, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var v Value
		if err := v.UnmarshalYAML(valNode); err != nil {
			return fmt.Errorf("field %q: %w", keyNode.Value, err)
		}
		out = append(out, Cell{Name: keyNode.Value, Value: v})
	}
	*r = out
	return nil
}

// UnmarshalYAML decodes a YAML scalar. Integers and finite floats become
// numbers, everything else keeps its literal text.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cells must be scalars", node.Line)
	}
	switch node.Tag {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			*v = TextValue(node.Value)
			return nil
		}
		*v = NumberValue(f)
	default:
		*v = TextValue(node.Value)
	}
	return nil
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// Sample returns the first record, which field inference inspects.
func (d Dataset) Sample() (Record, bool) {
	if len(d) == 0 {
		return nil, false
	}
	return d[0], true
}

// MissingFields counts the records that lack at least one of the named fields.
func (d Dataset) MissingFields(names []string) int {
	n := 0
	for _, r := range d {
		for _, name := range names {
			if !r.Has(name) {
				n++
				break
			}
		}
	}
	return n
}
