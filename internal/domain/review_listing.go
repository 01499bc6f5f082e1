package domain

import "strings"

// ReviewSort orders a company's public review listing.
type ReviewSort string

const (
	ReviewSortRecent  ReviewSort = "recent"
	ReviewSortHighest ReviewSort = "highest"
	ReviewSortLowest  ReviewSort = "lowest"
	ReviewSortHelpful ReviewSort = "helpful"
)

// ParseReviewSort accepts a sort name in any case; blank input yields ReviewSortRecent.
func ParseReviewSort(s string) (ReviewSort, error) {
	switch ReviewSort(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReviewSortRecent:
		return ReviewSortRecent, nil
	case ReviewSortHighest:
		return ReviewSortHighest, nil
	case ReviewSortLowest:
		return ReviewSortLowest, nil
	case ReviewSortHelpful:
		return ReviewSortHelpful, nil
	default:
		return "", InvalidArgumentError("unknown sort [%s]", s)
	}
}

type ReviewListOptions struct {
	Sort     ReviewSort
	Page     int
	PageSize int
}
