// Package bookstore provides the book record store: validated CRUD, substring
// search and pagination over a pluggable Backend.
//
// # Usage
//
//	store := bookstore.New()
//	book, err := store.Create(entities.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Year: 1965})
//	if bookstore.IsValidation(err) {
//		// show err.Error() to the user
//	}
//
// Every Book returned by a Store is a copy; changing it never affects what
// the store holds. All operations take a single store-wide lock.
package bookstore

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/validation"
)

// Store owns the books of one session.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

// New creates an empty store backed by memory.
func New() *Store {
	return NewWithBackend(NewMemoryBackend())
}

// NewWithBackend creates a store over the given backend.
func NewWithBackend(backend Backend) *Store {
	return &Store{backend: backend}
}

// Create validates the request, trims title and author, assigns a fresh id
// and stores the book. On a validation error the store is left unchanged.
func (s *Store) Create(req entities.CreateBookRequest) (entities.Book, error) {
	book, err := newBook(req)
	if err != nil {
		return entities.Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertLocked(book); err != nil {
		return entities.Book{}, err
	}
	return book, nil
}

// ReplaceAll empties the store and creates every request under one lock, so
// concurrent readers see either the old books or the complete new set.
// Invalid requests are skipped; each request gets an Outcome in order.
func (s *Store) ReplaceAll(requests []entities.CreateBookRequest) []Outcome[entities.Book] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Clear(); err != nil {
		log.Printf("[bookstore] clear failed: %v", err)
	}

	outcomes := make([]Outcome[entities.Book], 0, len(requests))
	for _, req := range requests {
		book, err := newBook(req)
		if err == nil {
			err = s.insertLocked(book)
		}
		if err != nil {
			outcomes = append(outcomes, Failure[entities.Book](err))
			continue
		}
		outcomes = append(outcomes, Success(book))
	}
	return outcomes
}

func newBook(req entities.CreateBookRequest) (entities.Book, error) {
	if err := validation.ValidateCreate(req); err != nil {
		return entities.Book{}, FromValidation(err)
	}
	return entities.Book{
		ID:     validation.GenerateID(),
		Title:  validation.Normalize(req.Title),
		Author: validation.Normalize(req.Author),
		Year:   req.Year,
	}, nil
}

func (s *Store) insertLocked(book entities.Book) error {
	if err := s.backend.Insert(book); err != nil {
		return fmt.Errorf("failed to store book: %w", err)
	}
	return nil
}

// FindByID returns the book with the given id, or false when there is none.
func (s *Store) FindByID(id string) (entities.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok, err := s.backend.Get(id)
	if err != nil {
		log.Printf("[bookstore] lookup of %s failed: %v", id, err)
		return entities.Book{}, false
	}
	return book, ok
}

// FindAll returns every book in insertion order.
func (s *Store) FindAll() []entities.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

// FindByAuthor returns books whose author contains query, ignoring case and
// the query's surrounding whitespace.
func (s *Store) FindByAuthor(query string) []entities.Book {
	return s.filter(func(b entities.Book) bool { return containsFold(b.Author, query) })
}

// FindByTitle returns books whose title contains query, ignoring case and
// the query's surrounding whitespace.
func (s *Store) FindByTitle(query string) []entities.Book {
	return s.filter(func(b entities.Book) bool { return containsFold(b.Title, query) })
}

// FindByYear returns books published in exactly the given year.
func (s *Store) FindByYear(year int) []entities.Book {
	return s.filter(func(b entities.Book) bool { return b.Year == year })
}

// Update applies the supplied fields of req to the book with the given id.
// The request is validated before the id is looked up, so an invalid
// request against a missing id reports the validation error. A missing id
// with a valid request returns false and no error.
func (s *Store) Update(id string, req entities.UpdateBookRequest) (entities.Book, bool, error) {
	if err := validation.ValidateUpdate(req); err != nil {
		return entities.Book{}, false, FromValidation(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok, err := s.backend.Get(id)
	if err != nil {
		return entities.Book{}, false, fmt.Errorf("failed to load book %s: %w", id, err)
	}
	if !ok {
		return entities.Book{}, false, nil
	}

	if req.Title != nil {
		book.Title = validation.Normalize(*req.Title)
	}
	if req.Author != nil {
		book.Author = validation.Normalize(*req.Author)
	}
	if req.Year != nil {
		book.Year = *req.Year
	}

	replaced, err := s.backend.Replace(book)
	if err != nil {
		return entities.Book{}, false, fmt.Errorf("failed to update book %s: %w", id, err)
	}
	if !replaced {
		return entities.Book{}, false, nil
	}
	return book, true, nil
}

// Delete removes the book and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.backend.Delete(id)
	if err != nil {
		log.Printf("[bookstore] delete of %s failed: %v", id, err)
		return false
	}
	return removed
}

// SafeDelete removes the book or returns a not-found error naming the id.
func (s *Store) SafeDelete(id string) error {
	if !s.Delete(id) {
		return NewNotFoundError(id)
	}
	return nil
}

// SafeCreate is Create with the result wrapped in an Outcome.
func (s *Store) SafeCreate(req entities.CreateBookRequest) Outcome[entities.Book] {
	book, err := s.Create(req)
	if err != nil {
		return Failure[entities.Book](err)
	}
	return Success(book)
}

// SafeUpdate is Update with the result wrapped in an Outcome. A missing id
// becomes a not-found failure.
func (s *Store) SafeUpdate(id string, req entities.UpdateBookRequest) Outcome[entities.Book] {
	book, found, err := s.Update(id, req)
	if err != nil {
		return Failure[entities.Book](err)
	}
	if !found {
		return Failure[entities.Book](NewNotFoundError(id))
	}
	return Success(book)
}

// Count returns the number of stored books.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.backend.Count()
	if err != nil {
		log.Printf("[bookstore] count failed: %v", err)
		return 0
	}
	return n
}

// IsEmpty reports whether the store holds no books.
func (s *Store) IsEmpty() bool {
	return s.Count() == 0
}

// Clear removes every book.
func (s *Store) Clear() {
	s.RemoveAll()
}

// RemoveAll removes every book and returns how many there were, counted
// under the same lock as the removal.
func (s *Store) RemoveAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.backend.Count()
	if err != nil {
		log.Printf("[bookstore] count failed: %v", err)
		n = 0
	}
	if err := s.backend.Clear(); err != nil {
		log.Printf("[bookstore] clear failed: %v", err)
		return 0
	}
	return n
}

// GetPaginated returns one page of FindAll. See Page for the clamping rules.
func (s *Store) GetPaginated(page, pageSize int) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.listLocked(), page, pageSize)
}

func (s *Store) filter(match func(entities.Book) bool) []entities.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]entities.Book, 0)
	for _, book := range s.listLocked() {
		if match(book) {
			matches = append(matches, book)
		}
	}
	return matches
}

func (s *Store) listLocked() []entities.Book {
	books, err := s.backend.List()
	if err != nil {
		log.Printf("[bookstore] list failed: %v", err)
		return []entities.Book{}
	}
	if books == nil {
		return []entities.Book{}
	}
	return books
}

func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(validation.Normalize(query)))
}
