package mapper

import (
	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/model"
)

type FormMapper struct{}

func NewFormMapper() *FormMapper {
	return &FormMapper{}
}

func (m *FormMapper) ToEntity(f *model.Form) *entity.Form {
	if f == nil {
		return nil
	}

	return &entity.Form{
		Id:          f.Id,
		PublicToken: f.PublicToken,
		OwnerId:     f.OwnerId,
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *FormMapper) ToModel(f *entity.Form) *model.Form {
	if f == nil {
		return nil
	}

	return &model.Form{
		Id:          f.Id,
		PublicToken: f.PublicToken,
		OwnerId:     f.OwnerId,
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *FormMapper) ToEntities(forms []*model.Form) []*entity.Form {
	entities := make([]*entity.Form, len(forms))
	for i, f := range forms {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
