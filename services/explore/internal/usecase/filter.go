package usecase

import (
	"sort"
	"strings"

	"itinera/services/explore/internal/entity"
)

type SortMode string

const (
	SortRating    SortMode = "rating"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortNewest    SortMode = "newest"
)

// ParseSort maps a query value onto a SortMode. Unknown values mean newest.
func ParseSort(s string) SortMode {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortRating, SortPriceLow, SortPriceHigh:
		return m
	default:
		return SortNewest
	}
}

type Filter struct {
	Query    string
	Tags     []string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortMode
}

// Apply runs the discovery pipeline over items: text search, tag filter,
// price range, then sort. The input slice is left untouched.
func Apply(items []*entity.Listing, f Filter) []*entity.Listing {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	selected := tagSet(f.Tags)

	out := make([]*entity.Listing, 0, len(items))
	for _, it := range items {
		if !matchesQuery(it, query) || !matchesTags(it, selected) || !inPriceRange(it.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		out = append(out, it)
	}

	switch f.Sort {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return ratedBefore(out[i], out[j]) })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	// newest keeps the fetch order, which is created_at desc.

	return out
}

func matchesQuery(it *entity.Listing, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), query) ||
		strings.Contains(strings.ToLower(it.Location), query) ||
		strings.Contains(strings.ToLower(it.CreatorName), query)
}

// matchesTags keeps an item when any of its tags is selected.
func matchesTags(it *entity.Listing, selected map[string]struct{}) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range it.Tags {
		if _, ok := selected[tag]; ok {
			return true
		}
	}
	return false
}

func inPriceRange(price float64, min, max *float64) bool {
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

func ratedBefore(a, b *entity.Listing) bool {
	if a.CreatorVerified != b.CreatorVerified {
		return a.CreatorVerified
	}
	if a.AverageRating != b.AverageRating {
		return a.AverageRating > b.AverageRating
	}
	return a.ReviewCount > b.ReviewCount
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// CountTags returns every tag used by items with its frequency, most used
// first and alphabetical among equals.
func CountTags(items []*entity.Listing) []entity.TagCount {
	counts := make(map[string]int)
	for _, it := range items {
		for _, t := range it.Tags {
			counts[t]++
		}
	}

	out := make([]entity.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, entity.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
