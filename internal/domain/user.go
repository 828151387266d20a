package domain

import "time"

type User struct {
	UserID      int       `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	IsAdmin     bool      `json:"is_admin,omitempty"`
	TimeCreated time.Time `json:"time_created,omitempty"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the payload of POST /login.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// UserUpdate is the body of PUT /users; empty fields are left untouched.
type UserUpdate struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

func (u UserUpdate) IsEmpty() bool {
	return u == UserUpdate{}
}

type UsernameAvailability struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}
