package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationRange(t *testing.T) {
	from, to := Pagination{Page: 0, Limit: 10}.Range()
	assert.Equal(t, 0, from)
	assert.Equal(t, 9, to)

	from, to = Pagination{Page: 1, Limit: 5}.Range()
	assert.Equal(t, 5, from)
	assert.Equal(t, 9, to)

	from, to = Pagination{Page: 3, Limit: 25}.Range()
	assert.Equal(t, 75, from)
	assert.Equal(t, 99, to)
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 2, Limit: 20}.Offset())
}

func TestEq(t *testing.T) {
	f := Eq("status", "active")
	assert.Equal(t, "status", f.Column)
	assert.Equal(t, OpEq, f.Operator)
	assert.Equal(t, "active", f.Value)
}

func TestIn(t *testing.T) {
	f := In("status", []string{"pending", "active"})
	assert.Equal(t, OpIn, f.Operator)
	assert.Equal(t, []string{"pending", "active"}, f.Value)
}
