package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20

	// Complaint and user listings are backed by offset queries against
	// Firestore; the cap keeps a single page from scanning the collection.
	maxPageSize = 100
)

// PaginationParams is the page window requested through the query string.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams reads the page and limit query parameters. Out-of-range
// or unparsable values fall back to the first page at the default size.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}
