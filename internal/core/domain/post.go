package domain

import "time"

// Author is the related profile summary embedded into posts and comments on
// reads. Nil means the author record could not be resolved.
type Author struct {
	Username  string `json:"username,omitempty" bson:"username,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
}

// DisplayName mirrors Profile.DisplayName for the embedded summary.
func (a *Author) DisplayName() string {
	if a == nil {
		return "Anonim"
	}
	if a.Username != "" {
		return a.Username
	}
	if a.Email != "" {
		return a.Email
	}
	return "Anonim"
}

// Post is a text/image posting. UserID is the immutable owner; ownership
// checks use it and never the author's display fields.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Author    *Author   `json:"author,omitempty" bson:"author,omitempty"`
}
