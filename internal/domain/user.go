package domain

// User Model
type User struct {
	ID       string  `json:"id"`       // UUID assigned at creation, immutable
	Name     string  `json:"name"`     // Display name
	Username string  `json:"username"` // Unique username, checked at creation time
	Pro      bool    `json:"pro"`      // Pro plan flag, only ever flips false to true
	Todos    []*Todo `json:"todos"`    // Owned todo list, insertion order
}
