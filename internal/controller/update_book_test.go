package controller

import (
	"net/http"
	"strings"
	"testing"

	"github.com/samber/lo"
	"go.uber.org/mock/gomock"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		id          string
		body        string
		patch       *entity.BookPatch
		useCaseErr  error
		codeRequire int
		message     string
	}{
		{name: "valid update",
			id:          testID,
			body:        `{"title":" The Catcher in the Rye "}`,
			patch:       &entity.BookPatch{Title: lo.ToPtr("The Catcher in the Rye")},
			codeRequire: http.StatusOK},
		{name: "null is not supplied",
			id:          testID,
			body:        `{"title":null,"author":"J. D. Salinger"}`,
			patch:       &entity.BookPatch{Author: lo.ToPtr("J. D. Salinger")},
			codeRequire: http.StatusOK},
		{name: "upper case id",
			id:          strings.ToUpper(testID),
			body:        `{"title":"t"}`,
			patch:       &entity.BookPatch{Title: lo.ToPtr("t")},
			codeRequire: http.StatusOK},
		{name: "empty patch",
			id:          testID,
			body:        `{}`,
			patch:       &entity.BookPatch{},
			codeRequire: http.StatusOK},
		{name: "invalid id",
			id:          "123",
			body:        `{"title":"t"}`,
			codeRequire: http.StatusBadRequest,
			message:     "bookId is invalid"},
		{name: "empty field",
			id:          testID,
			body:        `{"summary":"  "}`,
			codeRequire: http.StatusBadRequest,
			message:     "summary must not be empty"},
		{name: "unknown field",
			id:          testID,
			body:        `{"year":1951}`,
			codeRequire: http.StatusBadRequest,
			message:     "year is not allowed"},
		{name: "case variant key",
			id:          testID,
			body:        `{"TITLE":"x","author":"y","summary":"z"}`,
			codeRequire: http.StatusBadRequest,
			message:     "TITLE is not allowed"},
		{name: "non string value",
			id:          testID,
			body:        `{"author":["a"]}`,
			codeRequire: http.StatusBadRequest,
			message:     "author must be a string"},
		{name: "unknown book",
			id:          testID,
			body:        `{"title":"t"}`,
			patch:       &entity.BookPatch{Title: lo.ToPtr("t")},
			useCaseErr:  entity.ErrBookNotFound,
			codeRequire: http.StatusNotFound,
			message:     "Book not found"},
		{name: "internal error",
			id:          testID,
			body:        `{"title":"t"}`,
			patch:       &entity.BookPatch{Title: lo.ToPtr("t")},
			useCaseErr:  errInternal,
			codeRequire: http.StatusInternalServerError,
			message:     "Internal server error"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, engine := InitBooksTest(t)
			expected := testBook
			if test.patch != nil {
				expected = test.patch.Apply(testBook)
				book := expected
				if test.useCaseErr != nil {
					book = entity.Book{}
				}
				mockBooksUseCase.EXPECT().UpdateBook(gomock.Any(), strings.ToLower(test.id), *test.patch).Return(book, test.useCaseErr)
			}

			rec := doRequest(engine, http.MethodPut, "/books/"+test.id, test.body)
			if test.message != "" {
				requireErrorBody(t, rec, test.codeRequire, test.message)
				return
			}
			requireBookBody(t, rec, test.codeRequire, expected)
		})
	}
}
