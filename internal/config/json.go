package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

var errNotAnObject = errors.New("top-level value must be a JSON object")

// LoadFile reads the configuration file at path and parses it as JSON that
// may contain comments and trailing commas.
//
// Returns an error wrapping [ErrInvalidConfigFile] if the file cannot be
// read, is not valid JSON with comments, or its top-level value is not an
// object.
func LoadFile(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading a config file: %w", ErrInvalidConfigFile, err)
	}

	tree, err := parseJSONWithComments(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfigFile, path, err)
	}

	return tree, nil
}

// parseJSONWithComments strips comments and trailing commas from data and
// decodes the result into a Tree. Numbers are kept as json.Number so that
// ports and other integers survive a round trip unchanged.
func parseJSONWithComments(data []byte) (Tree, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing json with comments: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(standard))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("error decoding json config: %w", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotAnObject
	}

	return Tree(obj), nil
}
