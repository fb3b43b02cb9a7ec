package store

import (
	"errors"                      // Sentinel errors
	"sync"                        // Mutex guarding the user collection
	"time"                        // Todo timestamps
	"todo_system/internal/domain" // Importing domain models

	"github.com/google/uuid" // UUID generation
)

// Sentinel errors surfaced by store operations
var (
	ErrUsernameTaken = errors.New("username already exists")    // Duplicate username at creation
	ErrTodoNotFound  = errors.New("todo not found")             // Todo id absent from the owner's list
	ErrQuotaExceeded = errors.New("free plan todo quota hit")   // Free user already at the limit
	ErrAlreadyPro    = errors.New("pro plan already activated") // Upgrade on an already-pro user
)

// Store holds every user for the lifetime of the process. Lookups return
// references aliasing the live records, never copies; all mutations go through
// store methods so the check-then-mutate sequences stay in one critical section.
type Store struct {
	mu    sync.Mutex     // Guards users and every todo list hanging off them
	users []*domain.User // All registered users, insertion order
	limit int            // Free plan todo quota
}

// New returns an empty store with the given free-plan todo limit
func New(limit int) *Store {
	return &Store{limit: limit}
}

// UserByUsername scans for the first user with an exactly matching username
func (s *Store) UserByUsername(username string) (*domain.User, bool) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	for _, u := range s.users {
		if u.Username == username {
			return u, true // Found, return the live record
		}
	}
	return nil, false // Absence is an expected case, not an error
}

// UserByID scans for the user with the given id
func (s *Store) UserByID(id string) (*domain.User, bool) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	for _, u := range s.users {
		if u.ID == id {
			return u, true // Found, return the live record
		}
	}
	return nil, false // Absence is an expected case, not an error
}

// CreateUser checks username uniqueness and inserts the new user in one
// critical section, so two concurrent registrations cannot both pass the check
func (s *Store) CreateUser(name, username string) (*domain.User, error) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrUsernameTaken // Username already in use
		}
	}
	user := &domain.User{
		ID:       uuid.NewString(), // Fresh UUID
		Name:     name,             // Display name
		Username: username,         // Unique username
		Pro:      false,            // Every user starts on the free plan
		Todos:    []*domain.Todo{}, // Empty list, renders as [] not null
	}
	s.users = append(s.users, user) // Append to the collection
	return user, nil
}

// UpgradeUser flips the pro flag; the transition is one-way
func (s *Store) UpgradeUser(u *domain.User) error {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	if u.Pro {
		return ErrAlreadyPro // Already on the pro plan
	}
	u.Pro = true // Never reverts
	return nil
}

// QuotaReached reports whether a free user already holds the full quota
func (s *Store) QuotaReached(u *domain.User) bool {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	return !u.Pro && len(u.Todos) >= s.limit // Pro users are never capped
}

// AppendTodo builds a new todo and appends it to the user's list. The quota is
// re-checked under the lock so two concurrent creates cannot both slip past it.
func (s *Store) AppendTodo(u *domain.User, title string, deadline time.Time) (*domain.Todo, error) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	if !u.Pro && len(u.Todos) >= s.limit {
		return nil, ErrQuotaExceeded // Free user is at the limit
	}
	todo := &domain.Todo{
		ID:        uuid.NewString(), // Fresh UUID
		Title:     title,            // Given title
		Deadline:  deadline,         // Parsed deadline
		Done:      false,            // New todos start open
		CreatedAt: time.Now(),       // Set once, never touched again
	}
	u.Todos = append(u.Todos, todo) // Append in insertion order
	return todo, nil
}

// TodoByID scans only the owner's list, so ids belonging to other users
// surface as not found rather than as a permission error
func (s *Store) TodoByID(u *domain.User, id string) (*domain.Todo, bool) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	for _, t := range u.Todos {
		if t.ID == id {
			return t, true // Found, return the live record
		}
	}
	return nil, false // Not in this user's list
}

// UpdateTodo overwrites title and deadline in place; done and created_at are untouched
func (s *Store) UpdateTodo(t *domain.Todo, title string, deadline time.Time) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	t.Title = title       // Overwrite title
	t.Deadline = deadline // Overwrite deadline
}

// CompleteTodo marks the todo done; re-invoking keeps it true
func (s *Store) CompleteTodo(t *domain.Todo) {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	t.Done = true // Never reverts
}

// RemoveTodo locates the todo in the user's list and splices it out
func (s *Store) RemoveTodo(u *domain.User, id string) error {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	for i, t := range u.Todos {
		if t.ID == id {
			u.Todos = append(u.Todos[:i], u.Todos[i+1:]...) // Remove exactly one entry
			return nil
		}
	}
	return ErrTodoNotFound // Not in this user's list
}

// Todos returns a snapshot slice of the user's live todo pointers for rendering
func (s *Store) Todos(u *domain.User) []*domain.Todo {
	s.mu.Lock()         // Lock the store
	defer s.mu.Unlock() // Unlock when done
	out := make([]*domain.Todo, len(u.Todos)) // Snapshot the slice header
	copy(out, u.Todos)                        // Entries still alias the live todos
	return out
}
