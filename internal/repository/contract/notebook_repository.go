package contract

import (
	"context"

	"notebook-be/internal/entity"
)

// NotebookRepository is the persistence gateway for sections and pages.
// Every mutation and single-row read is scoped by both the entity id and
// the owning user id; a scoped operation that matches zero rows returns
// apperr.EntityNotFoundError.
type NotebookRepository interface {
	// GetSections returns the user's sections with their pages. Page
	// content is omitted; only its size travels with the tree.
	GetSections(ctx context.Context, userId string) ([]*entity.Section, error)

	CreateSection(ctx context.Context, section *entity.Section) error
	UpdateSection(ctx context.Context, section *entity.Section, userId string) error
	DeleteSection(ctx context.Context, id int, userId string) error

	GetPageContentById(ctx context.Context, id int, userId string) (string, error)
	AddPage(ctx context.Context, page *entity.Page, userId string) error
	UpdatePage(ctx context.Context, page *entity.Page, userId string) error
	DeletePage(ctx context.Context, id int, userId string) error
}
