package implementation

import (
	"context"
	"errors"

	"notebook-be/internal/apperr"
	"notebook-be/internal/entity"
	"notebook-be/internal/mapper"
	"notebook-be/internal/model"
	"notebook-be/internal/repository/contract"
	"notebook-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NotebookRepositoryImpl struct {
	db            *gorm.DB
	sectionMapper *mapper.SectionMapper
	pageMapper    *mapper.PageMapper
}

func NewNotebookRepository(db *gorm.DB) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		db:            db,
		sectionMapper: mapper.NewSectionMapper(),
		pageMapper:    mapper.NewPageMapper(),
	}
}

func (r *NotebookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NotebookRepositoryImpl) GetSections(ctx context.Context, userId string) ([]*entity.Section, error) {
	var models []*model.Section
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "id"},
	)
	// Content stays in the database; the tree carries its size only.
	err := query.Preload("Pages", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "title", "size_in_bytes", "section_id", "created_at", "updated_at").Order("id")
	}).Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.sectionMapper.ToEntities(models), nil
}

func (r *NotebookRepositoryImpl) CreateSection(ctx context.Context, section *entity.Section) error {
	m := r.sectionMapper.ToModel(section)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*section = *r.sectionMapper.ToEntity(m)
	return nil
}

func (r *NotebookRepositoryImpl) UpdateSection(ctx context.Context, section *entity.Section, userId string) error {
	result := r.db.WithContext(ctx).Model(&model.Section{}).
		Where("id = ? AND user_id = ?", section.Id, userId).
		Update("name", section.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &apperr.EntityNotFoundError{Entity: "section"}
	}
	return nil
}

func (r *NotebookRepositoryImpl) DeleteSection(ctx context.Context, id int, userId string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.Section{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &apperr.EntityNotFoundError{Entity: "section"}
	}
	return nil
}

func (r *NotebookRepositoryImpl) GetPageContentById(ctx context.Context, id int, userId string) (string, error) {
	var content string
	err := r.db.WithContext(ctx).Model(&model.Page{}).
		Joins("JOIN sections ON sections.id = pages.section_id").
		Where("pages.id = ? AND sections.user_id = ?", id, userId).
		Select("pages.content").
		Take(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &apperr.EntityNotFoundError{Entity: "page"}
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

func (r *NotebookRepositoryImpl) AddPage(ctx context.Context, page *entity.Page, userId string) error {
	// The target section must exist and belong to the caller.
	var section model.Section
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: page.SectionId},
		specification.OwnedBy{UserId: userId},
	)
	if err := query.First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperr.EntityNotFoundError{Entity: "section"}
		}
		return err
	}

	m := r.pageMapper.ToModel(page)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*page = *r.pageMapper.ToEntity(m)
	return nil
}

func (r *NotebookRepositoryImpl) UpdatePage(ctx context.Context, page *entity.Page, userId string) error {
	ownedSections := r.db.Model(&model.Section{}).Select("id").Where("user_id = ?", userId)
	result := r.db.WithContext(ctx).Model(&model.Page{}).
		Where("id = ? AND section_id IN (?)", page.Id, ownedSections).
		Updates(map[string]interface{}{
			"title":         page.Title,
			"content":       page.Content,
			"size_in_bytes": page.SizeInBytes,
			"updated_at":    page.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &apperr.EntityNotFoundError{Entity: "page"}
	}
	return nil
}

func (r *NotebookRepositoryImpl) DeletePage(ctx context.Context, id int, userId string) error {
	ownedSections := r.db.Model(&model.Section{}).Select("id").Where("user_id = ?", userId)
	result := r.db.WithContext(ctx).
		Where("id = ? AND section_id IN (?)", id, ownedSections).
		Delete(&model.Page{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &apperr.EntityNotFoundError{Entity: "page"}
	}
	return nil
}
