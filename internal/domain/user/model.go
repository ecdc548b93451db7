package user

import "time"

type User struct {
	ID        int
	Email     string
	Password  string // bcrypt hash
	CreatedAt time.Time
}

type Credentials struct {
	Email    string `json:"email" doc:"User email" minLength:"3"`
	Password string `json:"password" doc:"User password" minLength:"1"`
}
