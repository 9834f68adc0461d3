package models

import "gorm.io/datatypes"

// ExperienceEntry is one item of a resume's experience history.
type ExperienceEntry struct {
	Title string `json:"title"`
	Years int    `json:"years"`
}

// EducationEntry is one item of a resume's education history.
type EducationEntry struct {
	Year   int    `json:"year"`
	Degree string `json:"degree"`
}

// Resume is a parsed resume upload. user_id references a user id but is not
// enforced as a foreign key; the structured columns are stored as JSON arrays.
type Resume struct {
	ID               int64                                `gorm:"primaryKey" json:"id"`
	UserID           int64                                `gorm:"index;not null" json:"user_id"`
	OriginalFilePath string                               `gorm:"uniqueIndex;not null" json:"original_file_path"`
	ParsedText       string                               `gorm:"not null" json:"parsed_text"`
	ExtractedSkills  datatypes.JSONSlice[string]          `gorm:"not null" json:"extracted_skills"`
	Experience       datatypes.JSONSlice[ExperienceEntry] `json:"experience"`
	Education        datatypes.JSONSlice[EducationEntry]  `json:"education"`
}

func (Resume) TableName() string { return "resumes" }
