package entity

import "time"

// Page belongs to exactly one section. SizeInBytes is the UTF-8 byte
// length of Content, computed by the service. UpdatedAt stays nil until
// the first modification.
type Page struct {
	Id          int
	Title       string
	Content     string
	SizeInBytes int64
	SectionId   int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
