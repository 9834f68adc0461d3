package models

import "gorm.io/datatypes"

// Job is a posted job listing. salary_range and required_skills are stored as
// JSON arrays; posted_by references a user id but is not enforced as a
// foreign key.
type Job struct {
	ID             int64                       `gorm:"primaryKey" json:"id"`
	Title          string                      `gorm:"index;not null" json:"title"`
	Description    string                      `gorm:"uniqueIndex;not null" json:"description"`
	Company        string                      `gorm:"index;not null" json:"company"`
	Location       string                      `gorm:"index;not null" json:"location"`
	SalaryRange    datatypes.JSONSlice[string] `json:"salary_range"`
	RequiredSkills datatypes.JSONSlice[string] `json:"required_skills"`
	PostedBy       int64                       `gorm:"index" json:"posted_by"`
}

// TableName pins the table name independent of gorm pluralisation rules.
func (Job) TableName() string { return "jobs" }
