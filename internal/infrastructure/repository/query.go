package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kinotek/catalog/pkg/pagination"
)

// applyTerms adds a case-insensitive LIKE filter over the given column.
// LOWER/LIKE works on both postgres and the sqlite used in tests.
func applyTerms(db *gorm.DB, terms, column string) *gorm.DB {
	if strings.TrimSpace(terms) == "" {
		return db
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(terms)) + "%"
	return db.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), pattern)
}

// applyOrder adds an ORDER BY clause. Sort fields outside the allowlist fall
// back to the first allowed field; only asc/desc pass through.
func applyOrder(db *gorm.DB, query pagination.SearchQuery, allowed []string) *gorm.DB {
	sort := allowed[0]
	for _, field := range allowed {
		if query.Sort == field {
			sort = field
			break
		}
	}
	direction := "asc"
	if strings.EqualFold(query.Direction, "desc") {
		direction = "desc"
	}
	return db.Order(fmt.Sprintf("%s %s", sort, direction))
}

// applyPaging adds LIMIT/OFFSET for a zero-based page number.
func applyPaging(db *gorm.DB, query pagination.SearchQuery) *gorm.DB {
	perPage := query.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := query.Page
	if page < 0 {
		page = 0
	}
	return db.Limit(perPage).Offset(page * perPage)
}

// existingSubset returns the requested IDs that appear in found, preserving
// the request's iteration order.
func existingSubset(requested []string, found []string) []string {
	foundSet := make(map[string]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}
	out := make([]string, 0, len(found))
	for _, id := range requested {
		if _, ok := foundSet[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
