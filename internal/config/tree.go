// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"math"
	"strconv"
)

// Tree is a decoded JSON object. It is the configuration handed to the
// server framework, so keys unknown to this package are kept verbatim.
//
// Nested objects are map[string]any; a Tree returned by [Tree.Section]
// shares storage with its parent, so writes through it are visible in the
// parent tree.
type Tree map[string]any

// Overlay replaces every top-level key of t with the value of the same key
// in override. Nested objects are not merged: a user-supplied "node" object
// replaces the default "node" object entirely.
func (t Tree) Overlay(override Tree) {
	for key, value := range override {
		t[key] = value
	}
}

// Section returns the nested object at path, or nil if any element of the
// path is missing or is not an object. An empty path returns t itself.
func (t Tree) Section(path ...string) Tree {
	cur := map[string]any(t)
	for _, key := range path {
		next, ok := asObject(cur[key])
		if !ok {
			return nil
		}
		cur = next
	}

	return Tree(cur)
}

// Lookup returns the value stored at path and whether it is present.
func (t Tree) Lookup(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	parent := t.Section(path[:len(path)-1]...)
	if parent == nil {
		return nil, false
	}

	v, ok := parent[path[len(path)-1]]
	return v, ok
}

// Int returns the integer stored at path. Numbers decoded from JSON,
// native integers and numeric strings are accepted.
func (t Tree) Int(path ...string) (int, bool) {
	v, ok := t.Lookup(path...)
	if !ok {
		return 0, false
	}

	return toInt(v)
}

// String returns the string stored at path.
func (t Tree) String(path ...string) (string, bool) {
	v, ok := t.Lookup(path...)
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

// Bool returns the boolean stored at path.
func (t Tree) Bool(path ...string) (bool, bool) {
	v, ok := t.Lookup(path...)
	if !ok {
		return false, false
	}

	b, ok := v.(bool)
	return b, ok
}

// Set stores value at path, creating missing intermediate objects. An
// intermediate value that is not an object is replaced by an empty object.
// Set panics if t is nil.
func (t Tree) Set(value any, path ...string) {
	if len(path) == 0 {
		return
	}

	cur := map[string]any(t)
	for _, key := range path[:len(path)-1] {
		next, ok := asObject(cur[key])
		if !ok {
			next = make(map[string]any)
			cur[key] = next
		}
		cur = next
	}

	cur[path[len(path)-1]] = value
}

// Delete removes the value at path. Missing paths are ignored.
func (t Tree) Delete(path ...string) {
	if len(path) == 0 {
		return
	}

	if parent := t.Section(path[:len(path)-1]...); parent != nil {
		delete(parent, path[len(path)-1])
	}
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case Tree:
		return obj, true
	default:
		return nil, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}

	return 0, false
}
