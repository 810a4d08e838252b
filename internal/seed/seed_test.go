package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/book"
)

const fixtures = `
books:
  - name: Dunia Sophie
    year: 1991
    author: Jostein Gaarder
    publisher: Mizan
    pageCount: 800
    readPage: 800
  - name: Laskar Pelangi
    author: Andrea Hirata
    publisher: Bentang
    pageCount: 529
    readPage: 120
    reading: true
`

func TestLoad(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(book.NewMemoryRepo())

	ids, err := Load(ctx, strings.NewReader(fixtures), svc)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	list, err := svc.List(ctx, book.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Dunia Sophie", list[0].Name)
	assert.Equal(t, "Laskar Pelangi", list[1].Name)

	first, err := svc.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 1991, first.Year)
	assert.True(t, first.Finished)

	second, err := svc.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, second.Reading)
	assert.False(t, second.Finished)
}

func TestLoad_StopsAtInvalidBook(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(book.NewMemoryRepo())
	doc := `
books:
  - name: ok
  - pageCount: 3
  - name: never reached
`

	ids, err := Load(ctx, strings.NewReader(doc), svc)
	assert.ErrorIs(t, err, book.ErrMissingName)
	assert.ErrorContains(t, err, "seed book 1")
	assert.Len(t, ids, 1)

	list, _ := svc.List(ctx, book.Filter{})
	assert.Len(t, list, 1)
}

func TestLoad_Empty(t *testing.T) {
	ids, err := Load(context.Background(), strings.NewReader(""), book.NewService(book.NewMemoryRepo()))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(context.Background(), strings.NewReader("books: [oops"), book.NewService(book.NewMemoryRepo()))
	assert.ErrorContains(t, err, "decode fixtures")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtures), 0o600))

	ids, err := LoadFile(context.Background(), path, book.NewService(book.NewMemoryRepo()))
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), book.NewService(book.NewMemoryRepo()))
	assert.ErrorContains(t, err, "open fixtures")
}
