package mapper

import (
	"notebook-be/internal/entity"
	"notebook-be/internal/model"
)

type SectionMapper struct {
	pageMapper *PageMapper
}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{
		pageMapper: NewPageMapper(),
	}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}

	pages := make([]*entity.Page, 0, len(s.Pages))
	for i := range s.Pages {
		pages = append(pages, m.pageMapper.ToEntity(&s.Pages[i]))
	}

	return &entity.Section{
		Id:     s.Id,
		Name:   s.Name,
		UserId: s.UserId,
		Pages:  pages,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}

	pages := make([]model.Page, 0, len(s.Pages))
	for _, page := range s.Pages {
		pages = append(pages, *m.pageMapper.ToModel(page))
	}

	return &model.Section{
		Id:     s.Id,
		Name:   s.Name,
		UserId: s.UserId,
		Pages:  pages,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	result := make([]*entity.Section, 0, len(sections))
	for _, s := range sections {
		result = append(result, m.ToEntity(s))
	}
	return result
}
