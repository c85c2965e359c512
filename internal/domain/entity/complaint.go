package entity

import (
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// MaxComplaintImages bounds the images field; entries past the cap are
// dropped by the submission pipeline, not rejected.
const MaxComplaintImages = 3

var complaintTypes = map[string]bool{
	"road":        true,
	"waste":       true,
	"water":       true,
	"electricity": true,
	"noise":       true,
	"other":       true,
}

func IsValidComplaintType(t string) bool {
	return complaintTypes[t]
}

func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Complaint is the submitted-issue record tracked end to end. CreatedAt and
// UpdatedAt carry the serverTimestamp sentinel so the store's clock assigns
// them on write, never the client's.
type Complaint struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description" firestore:"description"`
	Type         string    `json:"type" firestore:"type"`
	Priority     string    `json:"priority" firestore:"priority"`
	Location     string    `json:"location,omitempty" firestore:"location,omitempty"`
	Status       string    `json:"status" firestore:"status"`
	Images       []string  `json:"images" firestore:"images"`
	Video        string    `json:"video,omitempty" firestore:"video,omitempty"`
	IncidentDate time.Time `json:"incident_date,omitempty" firestore:"incidentDate,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt,serverTimestamp"`
}
