package bookstore

import "github.com/mrlokans/bookshelf/internal/entities"

// Backend holds the id -> book mapping behind a Store. Implementations keep
// insertion order for List and never hand out aliases of what they hold.
// Validation, normalization and locking are the Store's job.
type Backend interface {
	Insert(book entities.Book) error
	Get(id string) (entities.Book, bool, error)
	// Replace overwrites an existing book, reporting false when the id is unknown.
	Replace(book entities.Book) (bool, error)
	Delete(id string) (bool, error)
	List() ([]entities.Book, error)
	Count() (int, error)
	Clear() error
}

// MemoryBackend keeps books in a map plus an insertion-order index.
type MemoryBackend struct {
	books map[string]entities.Book
	order []string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{books: make(map[string]entities.Book)}
}

func (m *MemoryBackend) Insert(book entities.Book) error {
	if _, exists := m.books[book.ID]; !exists {
		m.order = append(m.order, book.ID)
	}
	m.books[book.ID] = book
	return nil
}

func (m *MemoryBackend) Get(id string) (entities.Book, bool, error) {
	book, ok := m.books[id]
	return book, ok, nil
}

func (m *MemoryBackend) Replace(book entities.Book) (bool, error) {
	if _, ok := m.books[book.ID]; !ok {
		return false, nil
	}
	m.books[book.ID] = book
	return true, nil
}

func (m *MemoryBackend) Delete(id string) (bool, error) {
	if _, ok := m.books[id]; !ok {
		return false, nil
	}
	delete(m.books, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *MemoryBackend) List() ([]entities.Book, error) {
	books := make([]entities.Book, 0, len(m.order))
	for _, id := range m.order {
		books = append(books, m.books[id])
	}
	return books, nil
}

func (m *MemoryBackend) Count() (int, error) {
	return len(m.books), nil
}

func (m *MemoryBackend) Clear() error {
	m.books = make(map[string]entities.Book)
	m.order = nil
	return nil
}
