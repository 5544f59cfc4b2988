package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "questions", Question{}.TableName())
	assert.Equal(t, "categories", Category{}.TableName())
}

func TestMaxID_FitsInt4(t *testing.T) {
	assert.Equal(t, 2147483647, MaxID)
}
