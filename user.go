package tone3000

import "time"

// User is a TONE3000 user profile.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type UserList struct {
	Meta  ListMeta `json:"meta"`
	Items []User   `json:"users"`
}
