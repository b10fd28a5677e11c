package domain

// Task is a standalone task or a task attached to a project or ticket.
type Task struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Status    TaskStatus `json:"status"`
	StartDate string     `json:"startDate"`
	DueDate   string     `json:"dueDate"`
	Assigned  string     `json:"assigned"`
	Priority  string     `json:"priority"`
	Tags      string     `json:"tags"`
	RelatedTo string     `json:"relatedTo"`
}
