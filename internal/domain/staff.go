package domain

// Staff is a staff member of the admin portal. Active is toggled through a
// dedicated PATCH endpoint rather than a full update.
type Staff struct {
	ID         string `json:"_id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	LastLogin  string `json:"lastLogin"`
	Active     bool   `json:"active"`
}

// FullName joins first and last name for display and search.
func (s Staff) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
