package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notebook-be/internal/apperr"
	"notebook-be/internal/entity"
	"notebook-be/internal/repository/contract"
	"notebook-be/internal/repository/memory"
	"notebook-be/pkg/textnorm"
)

type INotebookService interface {
	GetSections(ctx context.Context, user entity.CurrentUser) ([]*entity.Section, error)
	SearchSections(ctx context.Context, user entity.CurrentUser, searchText string) ([]*entity.Section, error)
	CreateSection(ctx context.Context, user entity.CurrentUser, section *entity.Section) error
	UpdateSection(ctx context.Context, user entity.CurrentUser, section *entity.Section) error
	DeleteSection(ctx context.Context, user entity.CurrentUser, id int) error
	AddPage(ctx context.Context, user entity.CurrentUser, page *entity.Page) error
	UpdatePage(ctx context.Context, user entity.CurrentUser, page *entity.Page) error
	DeletePage(ctx context.Context, user entity.CurrentUser, id int) error
	GetPageContentById(ctx context.Context, user entity.CurrentUser, id int) (string, error)
}

type notebookService struct {
	repository contract.NotebookRepository
	cache      memory.ISectionCache
}

func NewNotebookService(
	repository contract.NotebookRepository,
	cache memory.ISectionCache,
) INotebookService {
	return &notebookService{
		repository: repository,
		cache:      cache,
	}
}

func (s *notebookService) GetSections(ctx context.Context, user entity.CurrentUser) ([]*entity.Section, error) {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return nil, err
	}

	return s.cache.GetSections(ctx, userId, s.repository.GetSections)
}

func (s *notebookService) SearchSections(ctx context.Context, user entity.CurrentUser, searchText string) ([]*entity.Section, error) {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(searchText) == "" {
		return []*entity.Section{}, nil
	}

	text := textnorm.Normalize(strings.TrimSpace(searchText))

	sections, err := s.cache.GetSections(ctx, userId, s.repository.GetSections)
	if err != nil {
		return nil, err
	}

	// A section matches on its own name or on any page title. It appears
	// at most once, with all of its pages.
	result := make([]*entity.Section, 0)
	for _, section := range sections {
		if strings.Contains(textnorm.Normalize(section.Name), text) {
			result = append(result, section)
			continue
		}
		for _, page := range section.Pages {
			if strings.Contains(textnorm.Normalize(page.Title), text) {
				result = append(result, section)
				break
			}
		}
	}

	return result, nil
}

func (s *notebookService) CreateSection(ctx context.Context, user entity.CurrentUser, section *entity.Section) error {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return err
	}
	if section == nil {
		return apperr.ErrInvalidArgument
	}

	// The effective owner is always the caller, whatever the client sent.
	section.UserId = userId
	section.Pages = append(section.Pages, &entity.Page{
		Title:     DefaultPageTitle,
		CreatedAt: time.Now().UTC(),
	})

	err = s.repository.CreateSection(ctx, section)
	s.invalidateAfterWrite(userId, err)
	return err
}

func (s *notebookService) UpdateSection(ctx context.Context, user entity.CurrentUser, section *entity.Section) error {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return err
	}
	if section == nil {
		return apperr.ErrInvalidArgument
	}

	section.Name = sectionNameOrDefault(section.Name)

	err = s.repository.UpdateSection(ctx, section, userId)
	s.invalidateAfterWrite(userId, err)
	return err
}

func (s *notebookService) DeleteSection(ctx context.Context, user entity.CurrentUser, id int) error {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return err
	}

	err = s.repository.DeleteSection(ctx, id, userId)
	s.invalidateAfterWrite(userId, err)
	return err
}

func (s *notebookService) AddPage(ctx context.Context, user entity.CurrentUser, page *entity.Page) error {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return err
	}
	if page == nil {
		return apperr.ErrInvalidArgument
	}

	page.Title = pageTitleOrDefault(page.Title)
	page.CreatedAt = time.Now().UTC()
	page.SizeInBytes = pageSizeInBytes(page.Content)

	err = s.repository.AddPage(ctx, page, userId)
	s.invalidateAfterWrite(userId, err)
	return err
}

func (s *notebookService) UpdatePage(ctx context.Context, user entity.CurrentUser, page *entity.Page) error {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return err
	}
	if page == nil {
		return apperr.ErrInvalidArgument
	}

	page.Title = pageTitleOrDefault(page.Title)
	page.SizeInBytes = pageSizeInBytes(page.Content)
	now := time.Now().UTC()
	page.UpdatedAt = &now

	err = s.repository.UpdatePage(ctx, page, userId)
	s.invalidateAfterWrite(userId, err)
	return err
}

func (s *notebookService) DeletePage(ctx context.Context, user entity.CurrentUser, id int) error {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return err
	}

	err = s.repository.DeletePage(ctx, id, userId)
	s.invalidateAfterWrite(userId, err)
	return err
}

func (s *notebookService) GetPageContentById(ctx context.Context, user entity.CurrentUser, id int) (string, error) {
	userId, err := authenticatedUserId(user)
	if err != nil {
		return "", err
	}

	return s.repository.GetPageContentById(ctx, id, userId)
}

// invalidateAfterWrite drops the user's cached tree after a confirmed
// write. A cancelled call may still have committed on the database
// side, so cancellation also invalidates; a scoped-miss or transport
// failure changed nothing and leaves the cache alone.
func (s *notebookService) invalidateAfterWrite(userId string, err error) {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.cache.Invalidate(userId)
	}
}

func authenticatedUserId(user entity.CurrentUser) (string, error) {
	if !user.IsAuthenticated {
		return "", apperr.ErrNotAuthorized
	}
	return user.Id, nil
}
