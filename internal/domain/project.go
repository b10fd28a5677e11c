package domain

// Project is an admin-portal project record as returned by the backend.
// Dates arrive as display strings; the frontend never parses them.
type Project struct {
	ID             string        `json:"_id"`
	Name           string        `json:"name"`
	Customer       string        `json:"customer"`
	Tags           string        `json:"tags"`
	StartDate      string        `json:"startDate"`
	Deadline       string        `json:"deadline"`
	Members        []string      `json:"members"`
	Status         ProjectStatus `json:"status"`
	Progress       float64       `json:"progress"`
	Billable       bool          `json:"billable"`
	EstimatedHours float64       `json:"estimatedHours"`
}
