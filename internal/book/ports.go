package book

import (
	"context"
)

// Repository defines the contract for book data storage.
//
//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Insert(ctx context.Context, b Book) error
	Replace(ctx context.Context, b Book) error
	Delete(ctx context.Context, id string) error
}
