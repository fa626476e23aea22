package schema

import (
	"encoding/json"
	"fmt"
)

// Field declares one key of an object schema.
type Field struct {
	Key  string
	Node Node

	optional   bool
	hasDefault bool
	def        any
}

func Required(key string, node Node) Field {
	return Field{Key: key, Node: node}
}

func Optional(key string, node Node) Field {
	return Field{Key: key, Node: node, optional: true}
}

// Default fills def when key is absent. An explicit null is still handed to
// node and rejected there.
func Default(key string, node Node, def any) Field {
	return Field{Key: key, Node: node, optional: true, hasDefault: true, def: def}
}

func (f Field) IsRequired() bool {
	return !f.optional
}

func (f Field) DefaultValue() (any, bool) {
	return f.def, f.hasDefault
}

// Refinement checks constraints that span several keys of the raw object.
type Refinement func(in map[string]any, errs *ErrorTree)

// ObjectNode accepts JSON objects. Keys that are not declared are dropped
// from the normalized value.
type ObjectNode struct {
	fields      []Field
	refinements []Refinement
}

func Object(fields ...Field) ObjectNode {
	return ObjectNode{fields: append([]Field(nil), fields...)}
}

func (o ObjectNode) Refine(r Refinement) ObjectNode {
	refs := make([]Refinement, 0, len(o.refinements)+1)
	refs = append(refs, o.refinements...)
	o.refinements = append(refs, r)
	return o
}

func (o ObjectNode) Fields() []Field {
	return append([]Field(nil), o.fields...)
}

// Field returns the declaration for key.
func (o ObjectNode) Field(key string) (Field, bool) {
	for _, f := range o.fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (o ObjectNode) Parse(value any, errs *ErrorTree) any {
	in, ok := value.(map[string]any)
	if !ok {
		errs.Add(typeMessage("object", value))
		return nil
	}

	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		raw, present := in[f.Key]
		if !present {
			switch {
			case f.hasDefault:
				out[f.Key] = f.def
			case !f.optional:
				errs.Child(f.Key).Add(requiredMessage)
			}
			continue
		}
		out[f.Key] = f.Node.Parse(raw, errs.Child(f.Key))
	}

	for _, r := range o.refinements {
		r(in, errs)
	}

	return out
}

// Normalize converts an arbitrary Go value into the generic JSON form the
// nodes understand. Values that are already generic are walked directly;
// anything else goes through encoding/json.
func Normalize(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, float64:
		return v, nil
	case json.RawMessage:
		return decodeJSON(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("%d: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	}

	if f, ok := toFloat(value); ok {
		return f, nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return decodeJSON(b)
}

func decodeJSON(b []byte) (any, error) {
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
