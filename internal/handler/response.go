package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/middleware"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

const (
	msgNotFound         = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "Internal server error"
)

// respondError отправляет ошибку в едином формате. Код определяется по цепочке ошибок.
func respondError(c *gin.Context, err error) {
	status, message := classifyError(err)
	if status == http.StatusInternalServerError {
		middleware.Logger(c).WithError(err).Error(msgInternal)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, message))
}

// respondBindError обрабатывает ошибку разбора тела запроса.
// Битый или пустой JSON - 400, остальное как в respondError.
func respondBindError(c *gin.Context, err error) {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		err = fmt.Errorf("%w: malformed JSON at offset %d", apperrors.ErrBadRequest, syntaxErr.Offset)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		err = fmt.Errorf("%w: empty or truncated body", apperrors.ErrBadRequest)
	}
	respondError(c, err)
}

// classifyError сопоставляет ошибку с HTTP-кодом и сообщением для клиента
func classifyError(err error) (int, string) {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity, fmt.Sprintf("%v: %s", apperrors.ErrValidation, describeValidation(validationErrs))
	case errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity, fmt.Sprintf("%v: field %s must be %s", apperrors.ErrValidation, typeErr.Field, typeErr.Type)
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
