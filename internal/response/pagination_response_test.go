package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, int64(3), p.TotalPages)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.True(t, p.HasMore)
	assert.Equal(t, 11, p.From)
	assert.Equal(t, 20, p.To)
}

func TestNewPaginationLastPage(t *testing.T) {
	p := NewPagination(3, 10, 5, 25)
	assert.Equal(t, int64(3), p.TotalPages)
	assert.False(t, p.HasMore)
	assert.Equal(t, 21, p.From)
	assert.Equal(t, 25, p.To)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 10, 0, 0)
	assert.Equal(t, int64(0), p.TotalPages)
	assert.False(t, p.HasMore)
	assert.Equal(t, 0, p.From)
	assert.Equal(t, 0, p.To)
}

func TestNewPaginationClampsInvalidInput(t *testing.T) {
	// page_size=0 dan page=0 dari query string tidak boleh bikin panic
	p := NewPagination(0, 0, 0, 7)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.PageSize)
	assert.Equal(t, int64(7), p.TotalPages)
	assert.Equal(t, 0, p.From)
}
