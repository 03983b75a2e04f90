package dto

import "github.com/fadilmartias/mock-interview/internal/model"

// FeedbackSummary adalah ringkasan performa satu interview.
type FeedbackSummary struct {
	Average string `json:"average"`
	Best    int    `json:"best"`
	Worst   int    `json:"worst"`
	Count   int    `json:"count"`
}

type FeedbackDTO struct {
	Summary FeedbackSummary    `json:"summary"`
	Answers []model.UserAnswer `json:"answers"`
}
