// Package pagination parses page/size query params and applies them to
// GORM list queries. Collections here are small (news posts, events,
// prayer wall), so the page cap is deliberately low.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
)

const (
	DefaultPage = 1
	// DefaultSize matches the public site's card grid (3 rows of 4).
	DefaultSize = 12
	MaxSize     = 60
)

// Query holds validated pagination parameters.
type Query struct {
	Page int
	Size int
}

// Offset is the row offset for the current page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

// FromContext reads page/size from the request, clamping out-of-range
// and unparseable values to the defaults.
func FromContext(c *gin.Context) Query {
	q := Query{
		Page: atoiOr(c.Query("page"), DefaultPage),
		Size: atoiOr(c.Query("size"), DefaultSize),
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Size < 1 {
		q.Size = DefaultSize
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
	return q
}

// Paginate runs the count and the windowed find, returning the page
// metadata for the response envelope.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.Offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}, nil
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
