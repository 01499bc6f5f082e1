package controller

import (
	"net/url"
	"strconv"

	"github.com/jbeshir/interview-insights/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page, err = positiveQueryInt(q, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}

	pageSize, err = positiveQueryInt(q, "page_size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if pageSize > maxPageSize {
		return 0, 0, domain.InvalidArgumentError("page size [%d] exceeds limit [%d]", pageSize, maxPageSize)
	}

	return page, pageSize, nil
}

// positiveQueryInt reads an optional query parameter that must be an integer of at least 1.
func positiveQueryInt(q url.Values, name string, def int) (int, error) {
	if !q.Has(name) {
		return def, nil
	}

	v, err := strconv.ParseInt(q.Get(name), 10, 32)
	if err != nil || v < 1 {
		return 0, domain.InvalidArgumentError("invalid %s [%s]", name, q.Get(name))
	}
	return int(v), nil
}
