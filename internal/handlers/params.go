package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/jobboardhq/jobboard/pkg/errors"
	"github.com/jobboardhq/jobboard/pkg/validator"
)

// parseListPage reads the optional skip/limit query parameters of a list-all
// request. An absent limit is reported as -1 so the catalog applies its
// configured default.
func parseListPage(c *gin.Context) (int, int, error) {
	skip := 0
	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, appErrors.NewValidation("skip must be a non-negative integer")
		}
		skip = v
	}

	limit := -1
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, appErrors.NewValidation("limit must be a non-negative integer")
		}
		limit = v
	}

	return skip, limit, nil
}

// parseID reads the integer path id of a get-by-id request.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, appErrors.NewValidation("id must be an integer")
	}
	return id, nil
}

// bindFilterQuery binds and validates a filter endpoint's query struct. skip
// and limit are mandatory there; their absence is a client error, not a
// default.
func bindFilterQuery(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return appErrors.NewValidation("skip and limit must be valid integers")
	}
	if err := validator.ValidateStruct(dst); err != nil {
		return appErrors.NewValidation(err.Error())
	}
	return nil
}
