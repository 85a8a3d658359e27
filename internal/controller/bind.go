package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/StrangeNoob/book-management-api/internal/entity"
	"github.com/StrangeNoob/book-management-api/internal/validator"
)

const fieldBody = "body"

var errMalformedBody = errors.New("request body must be a JSON object")

var bodyFields = []string{validator.FieldTitle, validator.FieldAuthor, validator.FieldSummary}

type createBookRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Summary string `json:"summary"`
}

func (r createBookRequest) draft() entity.BookDraft {
	return entity.BookDraft{
		Title:   r.Title,
		Author:  r.Author,
		Summary: r.Summary,
	}
}

// A JSON null leaves the pointer nil, the same as an absent key.
type updateBookRequest struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Summary *string `json:"summary"`
}

func (r updateBookRequest) patch() entity.BookPatch {
	return entity.BookPatch{
		Title:   r.Title,
		Author:  r.Author,
		Summary: r.Summary,
	}
}

// bindBody decodes a single JSON object into dst. An empty body decodes as {}.
// Keys must match a book field exactly; anything else, non-string values and
// trailing data are validation errors.
func bindBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return nil
	}

	decoder := json.NewDecoder(c.Request.Body)

	var raw json.RawMessage
	err := decoder.Decode(&raw)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil || decoder.More() {
		return entity.NewValidationError(fieldBody, errMalformedBody)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return entity.NewValidationError(fieldBody, errMalformedBody)
	}

	unknown := lo.Without(lo.Keys(keys), bodyFields...)
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return entity.NewValidationError(unknown[0], fmt.Errorf("%s is not allowed", unknown[0]))
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return entity.NewValidationError(typeErr.Field,
			fmt.Errorf("%s must be a string", typeErr.Field))
	}

	return entity.NewValidationError(fieldBody, errMalformedBody)
}
