// Package validator checks request payloads and path parameters before they
// reach the library use cases. It never talks to the store.
package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

const (
	FieldTitle   = "title"
	FieldAuthor  = "author"
	FieldSummary = "summary"
	FieldBookID  = "bookId"
)

var (
	errIDRequired = validation.NewError("validation_book_id_required", "bookId is required")
	errIDInvalid  = validation.NewError("validation_book_id_invalid", "bookId is invalid")
)

type field struct {
	name  string
	value *string
}

// ValidateCreate trims the draft in place and requires every text field to be
// non-empty. The error names the first failing field.
func ValidateCreate(draft *entity.BookDraft) error {
	fields := []field{
		{name: FieldTitle, value: &draft.Title},
		{name: FieldAuthor, value: &draft.Author},
		{name: FieldSummary, value: &draft.Summary},
	}

	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		err := validation.Validate(*f.value, validation.Required.Error(f.name+" is required"))
		if err != nil {
			return entity.NewValidationError(f.name, err)
		}
	}

	return nil
}

// ValidateUpdate trims the supplied fields of the patch in place. Absent fields
// are fine, supplied ones must not be empty.
func ValidateUpdate(patch *entity.BookPatch) error {
	fields := []field{
		{name: FieldTitle, value: patch.Title},
		{name: FieldAuthor, value: patch.Author},
		{name: FieldSummary, value: patch.Summary},
	}

	for _, f := range fields {
		if f.value != nil {
			*f.value = strings.TrimSpace(*f.value)
		}
		err := validation.Validate(f.value, validation.NilOrNotEmpty.Error(f.name+" must not be empty"))
		if err != nil {
			return entity.NewValidationError(f.name, err)
		}
	}

	return nil
}

// ValidateID checks that id has the shape of a document id (24 hex characters)
// and lowers it in place.
func ValidateID(id *string) error {
	if err := validation.Validate(*id, validation.Required.ErrorObject(errIDRequired)); err != nil {
		return entity.NewValidationError(FieldBookID, err)
	}

	if err := validation.Validate(*id, is.MongoID.ErrorObject(errIDInvalid)); err != nil {
		return entity.NewValidationError(FieldBookID, err)
	}

	*id = strings.ToLower(*id)
	return nil
}
