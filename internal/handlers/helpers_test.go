package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/cars?"+rawQuery, nil)
	return c
}

func TestIntQuery(t *testing.T) {
	c := queryContext(t, "year=2023&bogus=twenty")

	if year, ok := intQuery(c, "year"); !ok || year != 2023 {
		t.Errorf("intQuery(year) = %v, %v, want 2023, true", year, ok)
	}
	if _, ok := intQuery(c, "bogus"); ok {
		t.Error("intQuery(bogus) ok = true, want false")
	}
	if _, ok := intQuery(c, "missing"); ok {
		t.Error("intQuery(missing) ok = true, want false")
	}
}

func TestFloatQuery(t *testing.T) {
	c := queryContext(t, "min_price=49.50&max_price=lots")

	if price, ok := floatQuery(c, "min_price"); !ok || price != 49.50 {
		t.Errorf("floatQuery(min_price) = %v, %v, want 49.50, true", price, ok)
	}
	if _, ok := floatQuery(c, "max_price"); ok {
		t.Error("floatQuery(max_price) ok = true, want false")
	}
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"page=3", 3},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=first", 1},
		{"", 1},
	}

	for _, tt := range tests {
		c := queryContext(t, tt.query)
		if got := pageParam(c); got != tt.want {
			t.Errorf("pageParam(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
