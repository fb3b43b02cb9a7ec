package domain

import "time" // Timestamps for deadline and creation time

// Todo Model
type Todo struct {
	ID        string    `json:"id"`         // UUID assigned at creation, immutable
	Title     string    `json:"title"`      // Title, mutable via update
	Deadline  time.Time `json:"deadline"`   // Deadline, mutable via update
	Done      bool      `json:"done"`       // Completion flag, only ever flips false to true
	CreatedAt time.Time `json:"created_at"` // Set once at creation, immutable
}
