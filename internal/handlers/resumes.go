package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobboardhq/jobboard/internal/services"
	"github.com/jobboardhq/jobboard/pkg/response"
)

// ResumeHandler delivers the read-only resume catalogue endpoints.
type ResumeHandler struct {
	catalog *services.ResumeCatalog
}

// NewResumeHandler constructs a ResumeHandler instance.
func NewResumeHandler(catalog *services.ResumeCatalog) *ResumeHandler {
	return &ResumeHandler{catalog: catalog}
}

type resumeFilterQuery struct {
	UserID          string `form:"user_id"`
	ExtractedSkills string `form:"extracted_skills"`
	Experience      string `form:"experience"`
	Skip            *int   `form:"skip" validate:"required,min=0"`
	Limit           *int   `form:"limit" validate:"required,min=0"`
}

// GET /resumes/
func (h *ResumeHandler) List(c *gin.Context) {
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

// GET /resumes/filter
func (h *ResumeHandler) Filter(c *gin.Context) {
	var q resumeFilterQuery
	if err := bindFilterQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}

	payload, err := h.catalog.Filter(requestContext(c), []string{q.UserID, q.ExtractedSkills, q.Experience}, *q.Skip, *q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, payload)
}

// GET /resumes/:id
func (h *ResumeHandler) Get(c *gin.Context) {
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
