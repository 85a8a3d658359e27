package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/StrangeNoob/book-management-api/internal/entity"
)

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		id          string
		callUseCase bool
		useCaseErr  error
		codeRequire int
		message     string
	}{
		{name: "valid delete",
			id:          testID,
			callUseCase: true,
			codeRequire: http.StatusNoContent},
		{name: "invalid id",
			id:          "zzzzzzzzzzzzzzzzzzzzzzzz",
			codeRequire: http.StatusBadRequest,
			message:     "bookId is invalid"},
		{name: "unknown book",
			id:          testID,
			callUseCase: true,
			useCaseErr:  entity.ErrBookNotFound,
			codeRequire: http.StatusNotFound,
			message:     "Book not found"},
		{name: "internal error",
			id:          testID,
			callUseCase: true,
			useCaseErr:  errInternal,
			codeRequire: http.StatusInternalServerError,
			message:     "Internal server error"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, engine := InitBooksTest(t)
			if test.callUseCase {
				book := testBook
				if test.useCaseErr != nil {
					book = entity.Book{}
				}
				mockBooksUseCase.EXPECT().DeleteBook(gomock.Any(), test.id).Return(book, test.useCaseErr)
			}

			rec := doRequest(engine, http.MethodDelete, "/books/"+test.id, "")
			if test.message != "" {
				requireErrorBody(t, rec, test.codeRequire, test.message)
				return
			}
			require.Equal(t, test.codeRequire, rec.Code)
			require.Empty(t, rec.Body.String())
		})
	}
}
