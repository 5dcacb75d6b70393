package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePage(t *testing.T) {
	assert.NoError(t, ValidatePage(1, 20))
	assert.NoError(t, ValidatePage(5, 100))

	assert.ErrorIs(t, ValidatePage(0, 20), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(-1, 20), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(1, 0), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(1, -5), ErrInvalidPagination)
	assert.ErrorIs(t, ValidatePage(1, 101), ErrInvalidPagination)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 20))
	assert.Equal(t, 20, PageOffset(2, 20))
	assert.Equal(t, 90, PageOffset(10, 10))
}

func TestNewPagination_HasMoreHeuristic(t *testing.T) {
	// Full page assumes a successor exists
	p := NewPagination(1, 20, 20)
	assert.True(t, p.HasMore)

	// Short page means we reached the end
	p = NewPagination(2, 20, 7)
	assert.False(t, p.HasMore)

	p = NewPagination(1, 20, 0)
	assert.False(t, p.HasMore)
}
