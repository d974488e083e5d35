// Package upload holds the form records of the post upload endpoint.
package upload

import (
	"time"

	"github.com/google/uuid"
)

//go:generate go run github.com/dmitrymomot/typedmultipart/cmd/multipartgen -type CreatePost,Attachment

// Meta is free-form post metadata sent as a JSON part.
type Meta struct {
	Tags  []string `json:"tags"`
	Draft bool     `json:"draft"`
}

// CreatePost is the body of the post creation form.
type CreatePost struct {
	ID          uuid.UUID
	Title       string
	FullName    string    `multipart:"full_name"`
	Rating      *uint8    `multipart:"rating"`
	Initial     rune      `multipart:"initial,char"`
	Meta        Meta      `multipart:"meta,json"`
	Cover       []byte    `multipart:"cover"`
	PublishedAt time.Time `multipart:"published_at"`
	Internal    string    `multipart:"-"`
}

// Attachment is a file uploaded next to a post.
type Attachment struct {
	Name     string
	Size     int64
	Body     []byte
	Checksum *string
}
