package domain

import "time"

// Comment belongs to exactly one post and one author, both immutable after
// creation. There is no update or delete path for comments.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	PostID    string    `json:"post_id" bson:"post_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Author    *Author   `json:"author,omitempty" bson:"author,omitempty"`
}
