// Package seed loads fixture books into a running store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bookshelf/internal/book"
)

// Creator is the subset of book.Service needed to seed.
type Creator interface {
	Create(ctx context.Context, in book.Input) (string, error)
}

// File is the fixture document layout.
type File struct {
	Books []book.Input `yaml:"books"`
}

// Load decodes a fixture document from r and creates every book in order.
// It stops at the first book that fails and reports its index.
func Load(ctx context.Context, r io.Reader, c Creator) ([]string, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	ids := make([]string, 0, len(f.Books))
	for i, in := range f.Books {
		id, err := c.Create(ctx, in)
		if err != nil {
			return ids, fmt.Errorf("seed book %d (%q): %w", i, in.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// LoadFile opens path and calls Load.
func LoadFile(ctx context.Context, path string, c Creator) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer fh.Close()
	return Load(ctx, fh, c)
}
