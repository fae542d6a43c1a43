package models

import "time"

// NoteAuthor identifies the staff member who wrote a note. It is supplied
// explicitly by the caller rather than read from ambient session state.
type NoteAuthor struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Note is one entry in a block's append-only audit trail.
type Note struct {
	ID         string     `bson:"id" json:"id"`
	Content    string     `bson:"content" json:"content"`
	CreatedBy  NoteAuthor `bson:"created_by" json:"createdBy"`
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	IsInternal bool       `bson:"is_internal" json:"isInternal"` // external visibility is enforced by the rendering layer
}
