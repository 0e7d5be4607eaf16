package mapper

import (
	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/model"
)

type AISummaryMapper struct{}

func NewAISummaryMapper() *AISummaryMapper {
	return &AISummaryMapper{}
}

func (m *AISummaryMapper) ToEntity(s *model.AISummary) *entity.AISummary {
	if s == nil {
		return nil
	}

	return &entity.AISummary{
		Id:          s.Id,
		FormId:      s.FormId,
		SummaryText: s.SummaryText,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *AISummaryMapper) ToModel(s *entity.AISummary) *model.AISummary {
	if s == nil {
		return nil
	}

	return &model.AISummary{
		Id:          s.Id,
		FormId:      s.FormId,
		SummaryText: s.SummaryText,
		CreatedAt:   s.CreatedAt,
	}
}
