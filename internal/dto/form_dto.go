package dto

import "feedback-forms-be/internal/entity"

type CreateFormRequest struct {
	Title       string   `form:"title" validate:"required"`
	Description string   `form:"description"`
	// The inputs are named questions[]; the body parser strips the brackets
	// before matching, so the tag is the bare name.
	Questions []string `form:"questions"`
}

// PublicFormDTO is what an anonymous respondent sees.
type PublicFormDTO struct {
	Form      *entity.Form
	Questions []*entity.Question
}

// ResultsDTO backs the owner's results page.
type ResultsDTO struct {
	Form    *entity.Form
	Rows    []*entity.AnswerRow
	Summary string // empty when no summary exists yet
}
