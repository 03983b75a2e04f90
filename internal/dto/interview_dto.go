package dto

import (
	"time"

	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/google/uuid"
)

type InterviewRequest struct {
	Position      string `json:"position"`
	Description   string `json:"description"`
	Experience    int    `json:"experience"`
	TechStack     string `json:"tech_stack"`
	InterviewType string `json:"interview_type"`
	Resume        string `json:"resume"`
}

type InterviewDTO struct {
	ID            uuid.UUID        `json:"id"`
	Position      string           `json:"position"`
	Description   string           `json:"description"`
	Experience    int              `json:"experience"`
	TechStack     string           `json:"tech_stack"`
	InterviewType string           `json:"interview_type"`
	Resume        string           `json:"resume,omitempty"`
	Questions     []model.Question `json:"questions"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func NewInterviewDTO(m *model.Interview) InterviewDTO {
	return InterviewDTO{
		ID:            m.ID,
		Position:      m.Position,
		Description:   m.Description,
		Experience:    m.Experience,
		TechStack:     m.TechStack,
		InterviewType: m.InterviewType,
		Resume:        m.Resume,
		Questions:     m.Questions,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
