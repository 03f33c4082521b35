// internal/models/value.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValueKind tags the representation held by a Value.
type ValueKind string

const (
	ValueEmpty ValueKind = "empty"
	ValueText  ValueKind = "text"
	ValueList  ValueKind = "list"
)

// Value is the content of a section in one locale: free text, an ordered
// list of strings, or nothing. On the wire it is a JSON string, array or null.
type Value struct {
	kind  ValueKind
	text  string
	items []string
}

func EmptyValue() Value {
	return Value{kind: ValueEmpty}
}

func TextValue(s string) Value {
	return Value{kind: ValueText, text: s}
}

func ListValue(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: ValueList, items: cp}
}

func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return ValueEmpty
	}
	return v.kind
}

func (v Value) IsNull() bool {
	return v.Kind() == ValueEmpty
}

// Text returns the text content; ok is false for non-text values.
func (v Value) Text() (string, bool) {
	return v.text, v.Kind() == ValueText
}

// Items returns a copy of the list content; ok is false for non-list values.
func (v Value) Items() ([]string, bool) {
	if v.Kind() != ValueList {
		return nil, false
	}
	cp := make([]string, len(v.items))
	copy(cp, v.items)
	return cp, true
}

// FilledItems counts list entries that are not blank.
func (v Value) FilledItems() int {
	n := 0
	for _, it := range v.items {
		if strings.TrimSpace(it) != "" {
			n++
		}
	}
	return n
}

// IsBlank reports whether the value carries no meaningful content:
// null, whitespace-only text, or a list without any non-blank entry.
func (v Value) IsBlank() bool {
	switch v.Kind() {
	case ValueText:
		return strings.TrimSpace(v.text) == ""
	case ValueList:
		return v.FilledItems() == 0
	default:
		return true
	}
}

// Display renders the value for read-only views; lists are comma joined.
func (v Value) Display() string {
	switch v.Kind() {
	case ValueText:
		return v.text
	case ValueList:
		return strings.Join(v.items, ", ")
	default:
		return ""
	}
}

func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case ValueText:
		return v.text == other.text
	case ValueList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != other.items[i] {
				return false
			}
		}
	}
	return true
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case ValueText:
		return json.Marshal(v.text)
	case ValueList:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = EmptyValue()
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("list value must contain only strings: %w", err)
		}
		*v = ListValue(items...)
		return nil
	default:
		return fmt.Errorf("value must be a string, an array of strings or null")
	}
}

// ValueFromAny converts a decoded job variable (string, []interface{},
// []string or nil) into a Value.
func ValueFromAny(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return EmptyValue(), nil
	case string:
		return TextValue(t), nil
	case []string:
		return ListValue(t...), nil
	case []interface{}:
		items := make([]string, 0, len(t))
		for i, it := range t {
			s, ok := it.(string)
			if !ok {
				return Value{}, fmt.Errorf("list item %d is %T, want string", i, it)
			}
			items = append(items, s)
		}
		return ListValue(items...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// LocaleValue is the content and status of a section in one locale.
type LocaleValue struct {
	Status SectionStatus `json:"status"`
	Value  Value         `json:"value"`
}

// EmptyLocaleValue is the default for a freshly created section.
func EmptyLocaleValue() LocaleValue {
	return LocaleValue{Status: StatusEmpty, Value: EmptyValue()}
}
