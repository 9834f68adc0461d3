package services

import (
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard/internal/cache"
	"github.com/jobboardhq/jobboard/internal/models"
)

// Per-entity catalog aliases keep handler signatures readable.
type (
	JobCatalog    = Catalog[models.Job]
	UserCatalog   = Catalog[models.User]
	ResumeCatalog = Catalog[models.Resume]
)

// NewJobCatalog builds the jobs catalog. Filter order: title, company, location.
func NewJobCatalog(db *gorm.DB, store cache.Store, cfg Config) (*JobCatalog, error) {
	return NewCatalog[models.Job](db, store, Descriptor{
		Entity:   "jobs",
		Singular: "job",
		Filters: []FilterField{
			{Param: "title", Expr: "title LIKE ?"},
			{Param: "company", Expr: "company LIKE ?"},
			{Param: "location", Expr: "location LIKE ?"},
		},
	}, cfg)
}

// NewUserCatalog builds the users catalog. Filter order: name, email, role.
func NewUserCatalog(db *gorm.DB, store cache.Store, cfg Config) (*UserCatalog, error) {
	return NewCatalog[models.User](db, store, Descriptor{
		Entity:   "users",
		Singular: "user",
		Filters: []FilterField{
			{Param: "name", Expr: "name LIKE ?"},
			{Param: "email", Expr: "email LIKE ?"},
			{Param: "role", Expr: "role LIKE ?"},
		},
	}, cfg)
}

// NewResumeCatalog builds the resumes catalog. Filter order: user_id,
// extracted_skills, experience. user_id is numeric, so it is cast before the
// substring match; the JSON columns match against their serialized text.
func NewResumeCatalog(db *gorm.DB, store cache.Store, cfg Config) (*ResumeCatalog, error) {
	return NewCatalog[models.Resume](db, store, Descriptor{
		Entity:   "resumes",
		Singular: "resume",
		Filters: []FilterField{
			{Param: "user_id", Expr: "CAST(user_id AS TEXT) LIKE ?"},
			{Param: "extracted_skills", Expr: "extracted_skills LIKE ?"},
			{Param: "experience", Expr: "experience LIKE ?"},
		},
	}, cfg)
}
