// Package userservice is the generated-stub pattern's sample output:
// a hand-written illustration of what an IDL compiler would emit for
// a small "UserService" definition, wired against the wire-go
// runtime exactly as a real generated client would be. It is not
// itself generated; it exists to exercise runtime, channel, encoding,
// plainserde, and wire end to end.
package userservice

import "time"

// User is the IDL-defined object type GetUser/CreateUser exchange.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserRequest is the IDL-defined request body for CreateUser.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
