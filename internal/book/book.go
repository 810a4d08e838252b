package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrValidation is the parent of every input validation failure.
var ErrValidation = errors.New("validation failed")

var (
	ErrMissingName              = fmt.Errorf("%w: missing name", ErrValidation)
	ErrReadPageExceedsPageCount = fmt.Errorf("%w: readPage exceeds pageCount", ErrValidation)
)

// ErrNotPersisted is returned when a created book cannot be read back from the store.
var ErrNotPersisted = errors.New("book was not persisted")

// Book represents a book entity.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the list view of a book.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Summarize projects b to its list view.
func (b Book) Summarize() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// Input holds the writable fields of a book, shared by create and update.
type Input struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	Year      int    `json:"year" yaml:"year"`
	Author    string `json:"author" yaml:"author"`
	Summary   string `json:"summary" yaml:"summary"`
	Publisher string `json:"publisher" yaml:"publisher"`
	PageCount int    `json:"pageCount" yaml:"pageCount"`
	ReadPage  int    `json:"readPage" yaml:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading" yaml:"reading"`
}

// apply copies the writable fields of in onto b and recomputes finished.
func (b *Book) apply(in Input) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.PageCount == in.ReadPage
}

// Filter narrows a listing. A nil field is not applied.
type Filter struct {
	Name     *string
	Reading  *string
	Finished *string
}
