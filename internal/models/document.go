package models

import "time"

// DocumentCategories is the closed set of accepted document categories.
var DocumentCategories = []string{
	"Court Orders",
	"Case Plans",
	"DCP Notes",
	"Lawyer Letters",
	"Contact Logs",
	"Assessments/Reports",
	"Drug Test Results",
	"Program Certificates",
	"Other",
}

// ValidDocumentCategory reports whether c is an accepted category.
func ValidDocumentCategory(c string) bool {
	for _, v := range DocumentCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Document is an uploaded case document. The binary payload is opaque to
// this layer and omitted from listings.
type Document struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	Category   string    `json:"category"`
	UploadDate time.Time `json:"upload_date"`
	AIAnalysis string    `json:"ai_analysis"`
}
