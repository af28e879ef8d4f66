package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNormalize(t *testing.T) {
	f := Filter{}
	f.normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageLimit, f.Limit)

	f = Filter{Page: -3, Limit: -1}
	f.normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageLimit, f.Limit)

	f = Filter{Page: 7, Limit: 25}
	f.normalize()
	assert.Equal(t, 7, f.Page)
	assert.Equal(t, 25, f.Limit)

	f = Filter{Limit: 1000}
	f.normalize()
	assert.Equal(t, maxPageLimit, f.Limit)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, int64(0), p.Total)
	assert.Equal(t, 0, p.TotalPages)

	p = NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(1, 10, 10)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPagination(1, 3, 10)
	assert.Equal(t, 4, p.TotalPages)
}
