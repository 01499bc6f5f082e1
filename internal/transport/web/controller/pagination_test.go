package controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantErr      bool
	}{
		{name: "defaults", query: "", wantPage: 1, wantPageSize: 50},
		{name: "explicit", query: "page=3&page_size=25", wantPage: 3, wantPageSize: 25},
		{name: "max_page_size", query: "page_size=200", wantPage: 1, wantPageSize: 200},
		{name: "page_size_over_limit", query: "page_size=201", wantErr: true},
		{name: "zero_page", query: "page=0", wantErr: true},
		{name: "not_a_number", query: "page=two", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			page, pageSize, err := parsePagination(q)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, pageSize)
		})
	}
}
