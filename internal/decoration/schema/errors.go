package schema

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// ErrorTree mirrors the shape of a validated value. Every node holds the
// messages for its own path under "_errors" and one child per invalid field
// or array index.
type ErrorTree struct {
	Errors []string

	keys     []string
	children map[string]*ErrorTree
}

func NewErrorTree() *ErrorTree {
	return &ErrorTree{}
}

// Add records a message for the current path.
func (t *ErrorTree) Add(msg string) {
	t.Errors = append(t.Errors, msg)
}

// Child returns the subtree for key, creating it on first use.
func (t *ErrorTree) Child(key string) *ErrorTree {
	if c, ok := t.children[key]; ok {
		return c
	}
	if t.children == nil {
		t.children = make(map[string]*ErrorTree)
	}
	c := &ErrorTree{}
	t.children[key] = c
	t.keys = append(t.keys, key)
	return c
}

// Get returns the subtree for key without creating it.
func (t *ErrorTree) Get(key string) *ErrorTree {
	if t == nil {
		return nil
	}
	return t.children[key]
}

// Empty reports whether neither t nor any descendant holds a message.
func (t *ErrorTree) Empty() bool {
	if t == nil {
		return true
	}
	if len(t.Errors) > 0 {
		return false
	}
	for _, c := range t.children {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// At returns the messages recorded at a dotted path such as
// "screenPrinting.inkType" or "colors.0.system". The empty path is the root.
func (t *ErrorTree) At(path string) []string {
	node := t
	if path != "" {
		for _, key := range strings.Split(path, ".") {
			node = node.Get(key)
			if node == nil {
				return nil
			}
		}
	}
	if node == nil {
		return nil
	}
	return node.Errors
}

// Flatten maps every dotted path that holds messages to those messages.
func (t *ErrorTree) Flatten() map[string][]string {
	out := make(map[string][]string)
	t.flatten("", out)
	return out
}

func (t *ErrorTree) flatten(prefix string, out map[string][]string) {
	if t == nil {
		return
	}
	if len(t.Errors) > 0 {
		out[prefix] = append([]string(nil), t.Errors...)
	}
	for _, key := range t.keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		t.children[key].flatten(path, out)
	}
}

// Paths returns the flattened paths in sorted order.
func (t *ErrorTree) Paths() []string {
	flat := t.Flatten()
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (t *ErrorTree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteString(`{"_errors":`)

	errs := t.Errors
	if errs == nil {
		errs = []string{}
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return nil, err
	}
	buf.Write(b)

	for _, key := range t.keys {
		child := t.children[key]
		if child.Empty() {
			continue
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := child.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
