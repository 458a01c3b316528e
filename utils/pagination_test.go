package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/admin/coupons?"+query, nil)
	return c
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(paginationContext(""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationParsesQuery(t *testing.T) {
	p := NewPagination(paginationContext("page=3&limit=25"))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestNewPaginationClampsBadValues(t *testing.T) {
	p := NewPagination(paginationContext("page=0&limit=7"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = NewPagination(paginationContext("page=abc&limit=xyz"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = NewPagination(paginationContext("page=-2&limit=100"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestSetTotalComputesLastPage(t *testing.T) {
	p := NewPagination(paginationContext("limit=5"))

	p.SetTotal(12)
	assert.Equal(t, int64(12), p.Total)
	assert.Equal(t, 3, p.LastPage)

	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)

	p.SetTotal(5)
	assert.Equal(t, 1, p.LastPage)
}

func TestPaginationMeta(t *testing.T) {
	p := NewPagination(paginationContext("page=2&limit=5"))
	p.SetTotal(12)

	meta := p.Meta()
	assert.Equal(t, int64(12), meta["total"])
	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 5, meta["per_page"])
	assert.Equal(t, 3, meta["total_pages"])
}
