package usecase

import (
	"fmt"

	"github.com/fadilmartias/mock-interview/internal/dto"
	"github.com/fadilmartias/mock-interview/internal/model"
)

type AnswerStore interface {
	ListByInterview(userID, interviewID string) ([]model.UserAnswer, error)
}

type FeedbackUsecase struct {
	answers AnswerStore
}

func NewFeedbackUsecase(answers AnswerStore) *FeedbackUsecase {
	return &FeedbackUsecase{answers: answers}
}

// Summarize menghitung statistik ringkas dari kumpulan jawaban tersimpan.
// Urutan input tidak berpengaruh.
func Summarize(answers []model.UserAnswer) dto.FeedbackSummary {
	if len(answers) == 0 {
		return dto.FeedbackSummary{Average: "0.0"}
	}
	total := 0
	best := answers[0].Rating
	worst := answers[0].Rating
	for _, a := range answers {
		total += a.Rating
		if a.Rating > best {
			best = a.Rating
		}
		if a.Rating < worst {
			worst = a.Rating
		}
	}
	return dto.FeedbackSummary{
		Average: fmt.Sprintf("%.1f", float64(total)/float64(len(answers))),
		Best:    best,
		Worst:   worst,
		Count:   len(answers),
	}
}

func (uc *FeedbackUsecase) Feedback(userID, interviewID string) (*dto.FeedbackDTO, error) {
	answers, err := uc.answers.ListByInterview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return &dto.FeedbackDTO{Summary: Summarize(answers), Answers: answers}, nil
}
