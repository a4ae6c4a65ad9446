package jsonstat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// entry is one key/value pair of a JSON object, kept in document order
type entry[V any] struct {
	Key   string
	Value V
}

// ordered decodes a JSON object while keeping its key order, which
// encoding/json maps throw away
type ordered[V any] []entry[V]

func (o *ordered[V]) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	out := ordered[V]{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		k, ok := kt.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", kt)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		out = append(out, entry[V]{Key: k, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*o = out
	return nil
}

// categoryIndex is the json-stat category index: either an object of
// code -> position or an array of codes in position order
type categoryIndex []entry[int]

func (ci *categoryIndex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var codes []string
		if err := json.Unmarshal(b, &codes); err != nil {
			return err
		}
		out := make(categoryIndex, len(codes))
		for i, c := range codes {
			out[i] = entry[int]{Key: c, Value: i}
		}
		*ci = out
		return nil
	}
	var o ordered[int]
	if err := o.UnmarshalJSON(b); err != nil {
		return err
	}
	*ci = categoryIndex(o)
	return nil
}
