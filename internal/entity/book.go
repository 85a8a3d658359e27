package entity

import "time"

// Book is a persisted book record. ID, CreatedAt and UpdatedAt are assigned
// by the store and are never taken from a client.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookDraft holds the client supplied fields of a book that is about to be created.
type BookDraft struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Summary string `json:"summary"`
}

// BookPatch is a partial update. A nil field keeps its stored value.
type BookPatch struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Summary *string `json:"summary"`
}

// IsEmpty reports whether the patch supplies no field.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Summary == nil
}

// Apply merges the supplied fields of the patch into book.
func (p BookPatch) Apply(book Book) Book {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Author != nil {
		book.Author = *p.Author
	}
	if p.Summary != nil {
		book.Summary = *p.Summary
	}
	return book
}
