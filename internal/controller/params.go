package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID parses a numeric route parameter. Returns (0, false) and leaves
// the caller to answer 400 when the value is not a positive integer.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
