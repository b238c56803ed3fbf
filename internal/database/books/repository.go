// Package books stores books in a sqlite table through gorm.
//
// The Repository satisfies bookstore.Backend, so a bookstore.Store can run
// on top of it instead of the in-memory map:
//
//	repo := books.NewRepository(db)
//	store := bookstore.NewWithBackend(repo)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Record is the table row for a book. Seq preserves insertion order.
type Record struct {
	Seq    uint   `gorm:"primaryKey;autoIncrement"`
	BookID string `gorm:"uniqueIndex;size:64;not null"`
	Title  string `gorm:"index;size:512"`
	Author string `gorm:"index;size:256"`
	Year   int    `gorm:"column:publication_year"`
}

func (Record) TableName() string {
	return "books"
}

func recordFromBook(book entities.Book) Record {
	return Record{BookID: book.ID, Title: book.Title, Author: book.Author, Year: book.Year}
}

func (r Record) toBook() entities.Book {
	return entities.Book{ID: r.BookID, Title: r.Title, Author: r.Author, Year: r.Year}
}

// Repository handles book rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert adds a new row for the book.
func (r *Repository) Insert(book entities.Book) error {
	record := recordFromBook(book)
	return r.db.Create(&record).Error
}

// Get retrieves a book by its id.
func (r *Repository) Get(id string) (entities.Book, bool, error) {
	var record Record
	err := r.db.Where("book_id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Book{}, false, nil
	}
	if err != nil {
		return entities.Book{}, false, err
	}
	return record.toBook(), true, nil
}

// Replace overwrites the title, author and year of an existing book.
func (r *Repository) Replace(book entities.Book) (bool, error) {
	result := r.db.Model(&Record{}).Where("book_id = ?", book.ID).Updates(map[string]any{
		"title":            book.Title,
		"author":           book.Author,
		"publication_year": book.Year,
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a book row.
func (r *Repository) Delete(id string) (bool, error) {
	result := r.db.Where("book_id = ?", id).Delete(&Record{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List returns all books in insertion order.
func (r *Repository) List() ([]entities.Book, error) {
	var records []Record
	if err := r.db.Order("seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	books := make([]entities.Book, 0, len(records))
	for _, record := range records {
		books = append(books, record.toBook())
	}
	return books, nil
}

// Count returns the number of stored books.
func (r *Repository) Count() (int, error) {
	var count int64
	err := r.db.Model(&Record{}).Count(&count).Error
	return int(count), err
}

// Clear deletes every book row.
func (r *Repository) Clear() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{}).Error
}
