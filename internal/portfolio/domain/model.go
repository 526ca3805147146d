package domain

import "time"

// Category classifies a portfolio project.
type Category string

const (
	CategoryWebsite   Category = "website"
	CategoryEcommerce Category = "ecommerce"
	CategoryApp       Category = "app"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWebsite, CategoryEcommerce, CategoryApp:
		return true
	}
	return false
}

// Project is a single portfolio entry. It is storage-agnostic and shared
// across the memory store, the Mongo adapter and the HTTP layer. ID is an
// ObjectID hex string on the durable backend and a decimal integer string
// on the memory backend.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	ProjectURL  string    `json:"projectUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectInput carries the caller-supplied fields of a new project.
// The id and creation time are assigned by whichever backend stores it.
type ProjectInput struct {
	Title       string
	Description string
	Category    Category
	ImageURL    string
	ProjectURL  string
}

// ProjectUpdate is a partial update. Nil fields are left untouched.
// The id and creation time are not updatable by construction.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Category    *Category
	ImageURL    *string
	ProjectURL  *string
}

// Message is a contact-form submission. Immutable once stored.
type Message struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Body    string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// MessageInput carries the caller-supplied fields of a contact message.
type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// User exists to round out the repository surface; no route uses it.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
