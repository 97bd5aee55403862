package model

// User represents a user from the database
type User struct {
	ID   string
	Name string
}
