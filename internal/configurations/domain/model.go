package domain

import (
	"encoding/json"
	"time"
)

// DefaultDocument is returned for projects that were never saved.
var DefaultDocument = json.RawMessage(`{"pages":[],"theme":{}}`)

// Configuration is the builder document of one project. At most one exists
// per project. ID and timestamps are unset on the synthesized default.
type Configuration struct {
	ID         string          `json:"id,omitempty"`
	ProjectID  string          `json:"projectId"`
	ConfigJSON json.RawMessage `json:"configJson"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
}

// Default builds the unsaved document for a project.
func Default(projectID string) *Configuration {
	doc := make(json.RawMessage, len(DefaultDocument))
	copy(doc, DefaultDocument)
	return &Configuration{ProjectID: projectID, ConfigJSON: doc}
}

type Student struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

type Grade struct {
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
	Score     int    `json:"score"`
}

type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PreviewData is sample content the editor renders in preview mode.
type PreviewData struct {
	Students      []Student      `json:"students"`
	Grades        []Grade        `json:"grades"`
	Announcements []Announcement `json:"announcements"`
}

// SamplePreview returns a fresh copy of the fixed preview dataset.
func SamplePreview() PreviewData {
	return PreviewData{
		Students: []Student{
			{ID: "st-1", Name: "Ada Obi", Grade: "Primary 3"},
			{ID: "st-2", Name: "Musa Bello", Grade: "Primary 5"},
		},
		Grades: []Grade{
			{StudentID: "st-1", Subject: "Math", Score: 88},
			{StudentID: "st-2", Subject: "English", Score: 91},
		},
		Announcements: []Announcement{
			{ID: "an-1", Title: "Resumption Date", Content: "School resumes on Monday."},
		},
	}
}
