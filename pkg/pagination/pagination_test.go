package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/registra-app/registra/pkg/pagination"
)

/*
TestFromRequest_Clamping covers defaults and out-of-range query values.
*/
func TestFromRequest_Clamping(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		expectedPage  int
		expectedLimit int
	}{
		{"defaults", "", pagination.DefaultPage, pagination.DefaultLimit},
		{"explicit", "?page=3&limit=50", 3, 50},
		{"zero page", "?page=0", pagination.DefaultPage, pagination.DefaultLimit},
		{"negative limit", "?limit=-5", pagination.DefaultPage, pagination.DefaultLimit},
		{"limit over max", "?limit=5000", pagination.DefaultPage, pagination.DefaultLimit},
		{"garbage", "?page=abc&limit=xyz", pagination.DefaultPage, pagination.DefaultLimit},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/students"+testCase.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, testCase.expectedPage, params.Page)
			assert.Equal(t, testCase.expectedLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the SQL OFFSET derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

/*
TestNewMeta verifies total page rounding, including the empty result set.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 45)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 45, meta.Total)

	empty := pagination.NewMeta(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)

	unbounded := pagination.NewMeta(1, 0, 10)
	assert.Equal(t, 0, unbounded.TotalPages)
}
