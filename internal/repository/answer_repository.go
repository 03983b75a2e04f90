package repository

import (
	"github.com/fadilmartias/mock-interview/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db}
}

func (r *AnswerRepository) Create(answer *model.UserAnswer) error {
	return r.db.Create(answer).Error
}

// ExistsFor mengecek apakah user sudah punya jawaban tersimpan untuk
// pertanyaan yang sama (duplicate check sebelum save).
func (r *AnswerRepository) ExistsFor(userID, question string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserAnswer{}).
		Where("user_id = ? AND question = ?", userID, question).
		Count(&count).Error
	return count > 0, err
}

func (r *AnswerRepository) ListByInterview(userID, interviewID string) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.
		Where("user_id = ? AND interview_id = ?", userID, interviewID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}
