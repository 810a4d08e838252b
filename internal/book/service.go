package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 16

// Service provides book-related business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	newID    func() (string, error)
}

// Option customizes a Service.
type Option func(*Service)

// WithClock sets the time source used for insertedAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator sets the function used to mint book ids.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Service) { s.newID = gen }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() (string, error) { return gonanoid.New(idLength) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns summaries of the books matching f, in insertion order.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	m := compileFilter(f)
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		if m.match(b) {
			out = append(out, b.Summarize())
		}
	}
	return out, nil
}

// Create validates in, stores a new book and returns its id.
func (s *Service) Create(ctx context.Context, in Input) (string, error) {
	if err := s.check(in); err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("generate book id: %w", err)
	}
	now := s.now()
	b := Book{ID: id, InsertedAt: now, UpdatedAt: now}
	b.apply(in)

	if err := s.repo.Insert(ctx, b); err != nil {
		return "", fmt.Errorf("insert book: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotPersisted
		}
		return "", fmt.Errorf("verify book %s: %w", id, err)
	}
	return id, nil
}

// GetByID returns the book with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateByID replaces the writable fields of the book with the given id.
// The id and insertedAt are kept; updatedAt is refreshed.
func (s *Service) UpdateByID(ctx context.Context, id string, in Input) error {
	if err := s.check(in); err != nil {
		return err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	b.apply(in)
	b.UpdatedAt = s.now()

	return s.repo.Replace(ctx, b)
}

// DeleteByID removes the book with the given id.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// check reports the first failed rule: a missing name wins over page counts.
func (s *Service) check(in Input) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate book: %w", err)
	}
	switch verrs[0].Field() {
	case "Name":
		return ErrMissingName
	case "ReadPage":
		return ErrReadPageExceedsPageCount
	}
	return fmt.Errorf("%w: %s", ErrValidation, verrs[0].Error())
}
