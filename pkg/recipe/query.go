package recipe

import (
	"fmt"
	"sort"
	"strings"

	"Recipe-Book/domain"
	"Recipe-Book/entities"
)

// SearchFilter is a parsed search query. At most one of Category and Text
// is set; All marks the literal "all" keyword, which filters nothing.
type SearchFilter struct {
	Raw      string
	All      bool
	Category entities.RecipeCategory
	Text     string
}

// Supplied reports whether the request carried a query at all.
func (f SearchFilter) Supplied() bool {
	return f.Raw != ""
}

// ParseSearchQuery resolves q as either a category keyword or a substring
// search, never both. Keywords match case-insensitively but are not trimmed,
// so " chicken" is a text search.
func ParseSearchQuery(q string) SearchFilter {
	filter := SearchFilter{Raw: q}
	if q == "" {
		return filter
	}
	keyword := strings.ToLower(q)
	if keyword == domain.QueryAll {
		filter.All = true
		return filter
	}
	// "none" is a stored category but not a search keyword.
	for _, category := range entities.RecipeCategories {
		if category != entities.CategoryNone && string(category) == keyword {
			filter.Category = category
			return filter
		}
	}
	filter.Text = q
	return filter
}

// SortRecipes orders recipes in place. Unknown or empty keys keep the
// incoming order. The sort is stable, so ties keep their creation order.
func SortRecipes(recipes []domain.Recipe, key string) {
	var less func(a, b domain.Recipe) bool
	switch key {
	case domain.SortNewest:
		less = func(a, b domain.Recipe) bool { return a.CreatedAt.After(b.CreatedAt) }
	case domain.SortOldest:
		less = func(a, b domain.Recipe) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case domain.SortHighestRating:
		less = func(a, b domain.Recipe) bool { return a.AvgRating > b.AvgRating }
	default:
		return
	}
	sort.SliceStable(recipes, func(i, j int) bool { return less(recipes[i], recipes[j]) })
}

// Paginate slices items for the requested page. Pages past the end are
// empty; page numbers below one are treated as the first page.
func Paginate[T any](items []T, page, limit int) ([]T, domain.Pagination) {
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageItems := items[start:end]
	return pageItems, domain.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int64(total),
		TotalPages: totalPages,
		Count:      len(pageItems),
	}
}

// SearchHeading summarises a search result for display.
func SearchHeading(filter SearchFilter, count int) string {
	switch {
	case !filter.Supplied():
		return "Search for your new favourite recipes"
	case filter.Raw == domain.QueryAll:
		return fmt.Sprintf("Showing all recipes, a total of %d.", count)
	case count > 0:
		return fmt.Sprintf("Showing %d results for '%s'.", count, filter.Raw)
	default:
		return fmt.Sprintf("Sorry, no results for '%s'. Please try again.", filter.Raw)
	}
}

// TopN returns the first n recipes after sorting a copy by key.
func TopN(recipes []domain.Recipe, key string, n int) []domain.Recipe {
	sorted := make([]domain.Recipe, len(recipes))
	copy(sorted, recipes)
	SortRecipes(sorted, key)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
