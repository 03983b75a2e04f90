package repository

import (
	"github.com/fadilmartias/mock-interview/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *InterviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *InterviewRepository) FindByID(id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, "id = ?", id).Error
	return &interview, err
}

func (r *InterviewRepository) ListByUser(userID string, page, pageSize int) ([]model.Interview, int64, error) {
	var interviews []model.Interview
	var total int64

	q := r.db.Model(&model.Interview{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&interviews).Error
	return interviews, total, err
}

func (r *InterviewRepository) Delete(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Interview{}).Error
}
