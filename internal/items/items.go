package items

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Collection is an ordered, immutable sequence of item strings, fixed at
// process start. Accessors return copies so callers can never mutate the
// underlying data, which keeps concurrent reads safe without locking.
type Collection struct {
	values []string
}

// defaultItems is the built-in collection used when no catalog file is configured.
var defaultItems = []string{"Item1", "Item2", "Item3"}

// Default returns the built-in item collection.
func Default() Collection {
	return New(defaultItems)
}

// New creates a collection from the given values. The input slice is copied.
func New(values []string) Collection {
	c := Collection{values: make([]string, len(values))}
	copy(c.values, values)
	return c
}

// catalogFile is the on-disk YAML shape of an item catalog.
type catalogFile struct {
	Items []string `yaml:"items"`
}

// Load reads an item catalog from a YAML file:
//
//	items:
//	  - Item1
//	  - Item2
//
// The collection is fixed once loaded; the file is never re-read.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Collection{}, fmt.Errorf("failed to read item catalog: %w", err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Collection{}, fmt.Errorf("failed to parse item catalog %s: %w", path, err)
	}

	return New(catalog.Items), nil
}

// Items returns a copy of the ordered item values.
func (c Collection) Items() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// Len returns the number of items in the collection.
func (c Collection) Len() int {
	return len(c.values)
}

// FetchItems lets a Collection serve as an in-process data source for the
// viewer, bypassing HTTP when viewer and service share a process.
func (c Collection) FetchItems(ctx context.Context) ([]string, error) {
	return c.Items(), nil
}
