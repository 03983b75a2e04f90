package model

import (
	"time"

	"github.com/google/uuid"
)

// UserAnswer adalah jawaban final user untuk satu pertanyaan beserta
// evaluasi AI-nya. Satu record per (user, question), kecuali hasil
// follow-up round yang boleh menambah record kedua.
type UserAnswer struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InterviewID    uuid.UUID `gorm:"type:uuid;index" json:"interview_id"`
	UserID         string    `gorm:"type:varchar(128);index" json:"user_id"`
	Question       string    `gorm:"type:text" json:"question"`
	CorrectAns     string    `gorm:"type:text" json:"correct_ans"`
	UserAns        string    `gorm:"type:text" json:"user_ans"`
	Feedback       string    `gorm:"type:text" json:"feedback"`
	Rating         int       `json:"rating"`
	Confidence     int       `json:"confidence"`
	Tone           string    `gorm:"type:varchar(50)" json:"tone"`
	Clarity        int       `json:"clarity"`
	ResumeFeedback string    `gorm:"type:text" json:"resume_feedback"`
	FollowUp       bool      `json:"follow_up"`
	CreatedAt      time.Time `json:"created_at"`
}

func (a *UserAnswer) TableName() string {
	return "user_answers"
}
