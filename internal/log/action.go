package log

type Action = string

const (
	CreateBook Action = "CreateBook"
	ListBooks         = "ListBooks"
	GetBook           = "GetBook"
	UpdateBook        = "UpdateBook"
	DeleteBook        = "DeleteBook"
)
