package utils

import (
	"github.com/gin-gonic/gin"
)

// RangeParams holds an optional inclusive date range taken from the
// query string. Empty strings mean an open end. Values are ISO date
// strings (YYYY-MM-DD) and are compared lexically downstream; they are
// passed through as-is because the aggregation engine treats anything
// malformed as matching nothing rather than as an error.
type RangeParams struct {
	From string
	To   string
}

// GetRangeParams extracts the from/to date bounds from the request
func GetRangeParams(c *gin.Context) RangeParams {
	return RangeParams{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
}
