package model

import (
	"time"

	"github.com/google/uuid"
)

// Question adalah pasangan pertanyaan + jawaban referensi hasil generate AI.
// "Answer" bukan jawaban user, tapi contoh jawaban ideal.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Interview struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        string     `gorm:"type:varchar(128);index" json:"user_id"`
	Position      string     `gorm:"type:varchar(100)" json:"position"`
	Description   string     `gorm:"type:text" json:"description"`
	Experience    int        `json:"experience"`
	TechStack     string     `gorm:"type:text" json:"tech_stack"`
	InterviewType string     `gorm:"type:varchar(20)" json:"interview_type"` // Technical | Behavioral | HR | Case
	Resume        string     `gorm:"type:text" json:"resume,omitempty"`
	Questions     []Question `gorm:"type:jsonb;serializer:json" json:"questions"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews"
}
