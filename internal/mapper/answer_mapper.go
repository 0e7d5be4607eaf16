package mapper

import (
	"feedback-forms-be/internal/entity"
	"feedback-forms-be/internal/model"
)

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}

	return &entity.Answer{
		Id:         a.Id,
		FormId:     a.FormId,
		QuestionId: a.QuestionId,
		AnswerText: a.AnswerText,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}

	return &model.Answer{
		Id:         a.Id,
		FormId:     a.FormId,
		QuestionId: a.QuestionId,
		AnswerText: a.AnswerText,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AnswerMapper) ToEntities(answers []*model.Answer) []*entity.Answer {
	entities := make([]*entity.Answer, len(answers))
	for i, a := range answers {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
