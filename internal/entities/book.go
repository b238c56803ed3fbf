package entities

// Book is a single catalogued book. Values are passed and returned by copy;
// a Book held by a store has passed validation at its last write.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// CreateBookRequest carries the fields required to create a book.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// UpdateBookRequest carries a partial update. Nil fields are left untouched,
// so a caller can tell "not provided" apart from "set to zero/empty".
type UpdateBookRequest struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// IsEmpty reports whether no field is set on the update.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Author == nil && r.Year == nil
}
