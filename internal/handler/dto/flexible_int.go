package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// FlexibleInt принимает из JSON как число, так и строку с числом ("3").
// Нечисловое значение даёт apperrors.ErrValidation.
type FlexibleInt int64

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		raw = s
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", apperrors.ErrValidation, raw)
	}
	*f = FlexibleInt(n)
	return nil
}
