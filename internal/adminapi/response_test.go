package adminapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, query string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestParsePaginationDefaults(t *testing.T) {
	page, pageSize := parsePagination(newTestContext(t, ""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)
}

func TestParsePaginationBounds(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"explicit", "page=3&perPage=50", 3, 50},
		{"zero page falls back", "page=0&perPage=50", 1, 50},
		{"negative page falls back", "page=-2", 1, 20},
		{"per page over cap falls back", "perPage=501", 1, 20},
		{"garbage falls back", "page=abc&perPage=xyz", 1, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, pageSize := parsePagination(newTestContext(t, tc.query))
			assert.Equal(t, tc.page, page)
			assert.Equal(t, tc.pageSize, pageSize)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	c := newTestContext(t, "")
	c.SetParamNames("id")
	c.SetParamValues("1234567890123")

	id, err := parseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890123), id)

	c.SetParamValues("not-a-number")
	_, err = parseIDParam(c, "id")
	assert.Error(t, err)
}
