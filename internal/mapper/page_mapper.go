package mapper

import (
	"notebook-be/internal/entity"
	"notebook-be/internal/model"
)

type PageMapper struct{}

func NewPageMapper() *PageMapper {
	return &PageMapper{}
}

func (m *PageMapper) ToEntity(p *model.Page) *entity.Page {
	if p == nil {
		return nil
	}

	return &entity.Page{
		Id:          p.Id,
		Title:       p.Title,
		Content:     p.Content,
		SizeInBytes: p.SizeInBytes,
		SectionId:   p.SectionId,
		CreatedAt:   p.CreatedDate,
		UpdatedAt:   p.UpdatedDate,
	}
}

func (m *PageMapper) ToModel(p *entity.Page) *model.Page {
	if p == nil {
		return nil
	}

	return &model.Page{
		Id:          p.Id,
		Title:       p.Title,
		Content:     p.Content,
		SizeInBytes: p.SizeInBytes,
		SectionId:   p.SectionId,
		CreatedDate: p.CreatedAt,
		UpdatedDate: p.UpdatedAt,
	}
}
