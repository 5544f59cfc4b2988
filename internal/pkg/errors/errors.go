package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных (HTTP 422).
	ErrValidation = errors.New("validation failed")

	// ErrBadRequest используется для синтаксически некорректных запросов (HTTP 400):
	// битый JSON, отсутствующий обязательный параметр, нечисловой ID в пути.
	ErrBadRequest = errors.New("bad request")
)
