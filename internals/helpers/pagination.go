package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResolveLimit membaca ?limit= dan normalisasi ke [1..max].
func ResolveLimit(c *fiber.Ctx, def, max int) int {
	s := strings.TrimSpace(c.Query("limit"))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// ResolveOffset membaca ?offset= (>= 0).
func ResolveOffset(c *fiber.Ctx) int {
	s := strings.TrimSpace(c.Query("offset"))
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
