package book

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryRepo keeps books in insertion order in process memory.
// All access is serialized through mu; returned books are copies.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.books), nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

func (r *MemoryRepo) Insert(ctx context.Context, b Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(b.ID) >= 0 {
		return fmt.Errorf("insert book %s: duplicate id", b.ID)
	}
	r.books = append(r.books, b)
	return nil
}

func (r *MemoryRepo) Replace(ctx context.Context, b Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(b.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.books[i] = b
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.books = slices.Delete(r.books, i, i+1)
	return nil
}

// indexOf must be called with mu held.
func (r *MemoryRepo) indexOf(id string) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}
