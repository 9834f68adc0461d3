package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/internal/services"
	"github.com/jobboardhq/jobboard/pkg/response"
)

// JobHandler delivers the read-only job catalogue endpoints.
type JobHandler struct {
	catalog *services.JobCatalog
}

// NewJobHandler constructs a JobHandler instance.
func NewJobHandler(catalog *services.JobCatalog) *JobHandler {
	return &JobHandler{catalog: catalog}
}

type jobFilterQuery struct {
	Title    string `form:"title"`
	Company  string `form:"company"`
	Location string `form:"location"`
	Skip     *int   `form:"skip" validate:"required,min=0"`
	Limit    *int   `form:"limit" validate:"required,min=0"`
}

// GET /jobs/
func (h *JobHandler) List(c *gin.Context) {
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

// GET /jobs/filter
func (h *JobHandler) Filter(c *gin.Context) {
	var q jobFilterQuery
	if err := bindFilterQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.catalog.Filter(requestContext(c), []string{q.Title, q.Company, q.Location}, *q.Skip, *q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, payload)
}

// GET /jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
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
