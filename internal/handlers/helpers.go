package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// pageParam reads the ?page query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseDate parses a YYYY-MM-DD form value.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// intQuery reads an integer query parameter. Missing or non-numeric
// values report false so the caller can skip the filter.
func intQuery(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, false
	}
	return value, true
}

// floatQuery reads a numeric query parameter, same contract as intQuery.
func floatQuery(c *gin.Context, name string) (float64, bool) {
	value, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
