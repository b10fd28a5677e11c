package domain

// Article is a knowledge-base entry grouped under a category.
type Article struct {
	ID       string `json:"_id"`
	Subject  string `json:"subject"`
	Group    string `json:"group"`
	Body     string `json:"body,omitempty"`
	Internal bool   `json:"internal"`
	Disabled bool   `json:"disabled"`
	Created  string `json:"created"`
}

// DocumentTemplate is a configurable print/email document layout managed
// from the admin document-template configurator.
type DocumentTemplate struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body,omitempty"`
	IsDefault bool   `json:"isDefault"`
	UpdatedAt string `json:"updatedAt"`
}
