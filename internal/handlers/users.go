package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/internal/services"
	"github.com/jobboardhq/jobboard/pkg/response"
)

// UserHandler delivers the read-only user catalogue endpoints.
type UserHandler struct {
	catalog *services.UserCatalog
}

// NewUserHandler constructs a UserHandler instance.
func NewUserHandler(catalog *services.UserCatalog) *UserHandler {
	return &UserHandler{catalog: catalog}
}

type userFilterQuery struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Role  string `form:"role"`
	Skip  *int   `form:"skip" validate:"required,min=0"`
	Limit *int   `form:"limit" validate:"required,min=0"`
}

// GET /users/
func (h *UserHandler) List(c *gin.Context) {
	skip, limit, err := parseListPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.catalog.List(requestContext(c), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, payload)
}

// GET /users/filter
func (h *UserHandler) Filter(c *gin.Context) {
	var q userFilterQuery
	if err := bindFilterQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.catalog.Filter(requestContext(c), []string{q.Name, q.Email, q.Role}, *q.Skip, *q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, payload)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.catalog.Get(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, payload)
}
