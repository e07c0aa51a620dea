package dto

import "time"

type SectionDto struct {
	Id    int       `json:"id"`
	Name  string    `json:"name" validate:"required,min=1,max=30"`
	Pages []PageDto `json:"pages"`
}

// PageDto is shared by create and update. SectionId is required on both:
// updates scope by page id alone, but the client must still echo the
// owning section id.
type PageDto struct {
	Id          int        `json:"id"`
	Title       string     `json:"title" validate:"required,min=1,max=30"`
	Content     string     `json:"content"`
	SizeInBytes int64      `json:"sizeInBytes"`
	SectionId   int        `json:"sectionId" validate:"required,gt=0"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type PageContentResponse struct {
	Id      int    `json:"id"`
	Content string `json:"content"`
}
