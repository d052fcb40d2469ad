package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senicpos/pos-api/pkg/pagination"
)

// parseUUIDParam parses a UUID path parameter, returning uuid.Nil and
// false when the value is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// paginationFromQuery builds pagination params from page/per_page query values
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}
