package entity

import "time"

// User is a Telegram account known to the bot. Created on first contact,
// name and handle refreshed on every later one.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
