package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookStore is the part of bookstore.Store the HTTP API relies on.
type BookStore interface {
	FindByID(id string) (entities.Book, bool)
	FindAll() []entities.Book
	FindByAuthor(query string) []entities.Book
	FindByTitle(query string) []entities.Book
	FindByYear(year int) []entities.Book
	SafeCreate(req entities.CreateBookRequest) bookstore.Outcome[entities.Book]
	SafeUpdate(id string, req entities.UpdateBookRequest) bookstore.Outcome[entities.Book]
	SafeDelete(id string) error
	Count() int
	IsEmpty() bool
	RemoveAll() int
	GetPaginated(page, pageSize int) bookstore.Page
}

type BooksController struct {
	store           BookStore
	defaultPageSize int
	maxPageSize     int
}

func NewBooksController(store BookStore, defaultPageSize, maxPageSize int) *BooksController {
	return &BooksController{
		store:           store,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListBooks returns one page of books: GET /api/books?page=&page_size=
func (controller *BooksController) ListBooks(c *gin.Context) {
	page, ok := parsePositiveQuery(c, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := parsePositiveQuery(c, "page_size", controller.defaultPageSize)
	if !ok {
		return
	}
	if pageSize > controller.maxPageSize {
		pageSize = controller.maxPageSize
	}

	c.JSON(http.StatusOK, controller.store.GetPaginated(page, pageSize))
}

// GetAllBooks returns every book: GET /api/books/all
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books := controller.store.FindAll()
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// SearchBooks filters by exactly one of title, author or year:
// GET /api/books/search?title=|author=|year=
func (controller *BooksController) SearchBooks(c *gin.Context) {
	title, hasTitle := c.GetQuery("title")
	author, hasAuthor := c.GetQuery("author")
	yearRaw, hasYear := c.GetQuery("year")

	given := 0
	for _, present := range []bool{hasTitle, hasAuthor, hasYear} {
		if present {
			given++
		}
	}
	if given != 1 {
		respondBadRequest(c, "exactly one of title, author or year query parameters is required")
		return
	}

	var books []entities.Book
	switch {
	case hasTitle:
		books = controller.store.FindByTitle(title)
	case hasAuthor:
		books = controller.store.FindByAuthor(author)
	default:
		year, err := strconv.Atoi(strings.TrimSpace(yearRaw))
		if err != nil {
			respondBadRequest(c, "year must be an integer")
			return
		}
		books = controller.store.FindByYear(year)
	}

	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBookStats reports store size: GET /api/books/stats
func (controller *BooksController) GetBookStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_books": controller.store.Count(),
		"is_empty":    controller.store.IsEmpty(),
	})
}

// GetBook returns a single book: GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id := c.Param("id")
	book, ok := controller.store.FindByID(id)
	if !ok {
		respondStoreError(c, bookstore.NewNotFoundError(id), "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook adds a book: POST /api/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	payload, ok := readPayload(c)
	if !ok {
		return
	}
	req, err := payload.toCreateRequest()
	if err != nil {
		respondStoreError(c, err, "decode create request")
		return
	}

	outcome := controller.store.SafeCreate(req)
	if !outcome.IsOK() {
		respondStoreError(c, outcome.Err(), "create book")
		return
	}
	respondCreated(c, outcome.Value())
}

// UpdateBook applies a partial update: PATCH /api/books/:id
func (controller *BooksController) UpdateBook(c *gin.Context) {
	payload, ok := readPayload(c)
	if !ok {
		return
	}
	req, err := payload.toUpdateRequest()
	if err != nil {
		respondStoreError(c, err, "decode update request")
		return
	}

	outcome := controller.store.SafeUpdate(c.Param("id"), req)
	if !outcome.IsOK() {
		respondStoreError(c, outcome.Err(), "update book")
		return
	}
	c.JSON(http.StatusOK, outcome.Value())
}

// DeleteBook removes a book: DELETE /api/books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	if err := controller.store.SafeDelete(c.Param("id")); err != nil {
		respondStoreError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearBooks removes every book: DELETE /api/books
func (controller *BooksController) ClearBooks(c *gin.Context) {
	removed := controller.store.RemoveAll()
	respondSuccess(c, "all books removed", gin.H{"removed": removed})
}

func readPayload(c *gin.Context) (bookPayload, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "could not read request body")
		return nil, false
	}
	payload, err := parseBookPayload(body)
	if err != nil || payload == nil {
		respondBadRequest(c, "request body must be a JSON object")
		return nil, false
	}
	return payload, true
}
