package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryUintPtr reads an optional numeric query parameter. Absent or malformed
// values become nil so the query runs unfiltered.
func queryUintPtr(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	v := uint(value)
	return &v
}

// queryIntDefault reads a positive integer query parameter, falling back to
// the default when absent, malformed or non-positive.
func queryIntDefault(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
