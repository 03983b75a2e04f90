package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/mock-interview/internal/dto"
	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/fadilmartias/mock-interview/internal/normalizer"
	"github.com/fadilmartias/mock-interview/internal/prompt"
	"github.com/fadilmartias/mock-interview/internal/service"
	"github.com/fadilmartias/mock-interview/internal/util"
)

// ErrNotOwner dikembalikan saat user mengakses interview milik orang lain.
var ErrNotOwner = errors.New("interview does not belong to this user")

var interviewTypes = map[string]bool{
	"Technical":  true,
	"Behavioral": true,
	"HR":         true,
	"Case":       true,
}

type InterviewStore interface {
	Create(interview *model.Interview) error
	Update(interview *model.Interview) error
	FindByID(id string) (*model.Interview, error)
	ListByUser(userID string, page, pageSize int) ([]model.Interview, int64, error)
	Delete(id, userID string) error
}

type InterviewUsecase struct {
	interviews InterviewStore
	generator  service.TextGenerator
}

func NewInterviewUsecase(interviews InterviewStore, generator service.TextGenerator) *InterviewUsecase {
	return &InterviewUsecase{interviews: interviews, generator: generator}
}

func validateRequest(req dto.InterviewRequest) error {
	formErrors := map[string]string{}
	if req.Position == "" {
		formErrors["position"] = "Position is required"
	} else if len(req.Position) > 100 {
		formErrors["position"] = "Position must be 100 characters or less"
	}
	if len(req.Description) < 10 {
		formErrors["description"] = "Description is required"
	}
	if req.Experience < 0 {
		formErrors["experience"] = "Experience cannot be empty or negative"
	}
	if strings.TrimSpace(req.TechStack) == "" {
		formErrors["tech_stack"] = "Tech stack must be at least a character"
	}
	if !interviewTypes[req.InterviewType] {
		formErrors["interview_type"] = "Interview type is required"
	}
	if len(formErrors) > 0 {
		return util.NewFormError("invalid interview data", formErrors)
	}
	return nil
}

// generateQuestions minta 5 pasang pertanyaan+jawaban ke LLM dan parse
// hasilnya. Gagal generate = tidak ada state yang tersimpan; user tinggal
// submit ulang.
func (uc *InterviewUsecase) generateQuestions(ctx context.Context, req dto.InterviewRequest) ([]model.Question, error) {
	p := prompt.GenerateQuestions(req.Position, req.Description, req.Experience, req.TechStack, req.InterviewType, req.Resume)
	text, err := uc.generator.GenerateContent(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("generate interview questions: %w", err)
	}
	questions, err := normalizer.Array[model.Question](text)
	if err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}
	return questions, nil
}

func (uc *InterviewUsecase) Create(ctx context.Context, userID string, req dto.InterviewRequest) (*model.Interview, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	questions, err := uc.generateQuestions(ctx, req)
	if err != nil {
		return nil, err
	}
	interview := &model.Interview{
		UserID:        userID,
		Position:      req.Position,
		Description:   req.Description,
		Experience:    req.Experience,
		TechStack:     req.TechStack,
		InterviewType: req.InterviewType,
		Resume:        req.Resume,
		Questions:     questions,
	}
	if err := uc.interviews.Create(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// Update adalah satu-satunya jalur yang mengubah daftar pertanyaan:
// edit config selalu regenerate.
func (uc *InterviewUsecase) Update(ctx context.Context, userID, id string, req dto.InterviewRequest) (*model.Interview, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	interview, err := uc.interviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if interview.UserID != userID {
		return nil, ErrNotOwner
	}
	questions, err := uc.generateQuestions(ctx, req)
	if err != nil {
		return nil, err
	}
	interview.Position = req.Position
	interview.Description = req.Description
	interview.Experience = req.Experience
	interview.TechStack = req.TechStack
	interview.InterviewType = req.InterviewType
	interview.Resume = req.Resume
	interview.Questions = questions
	if err := uc.interviews.Update(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (uc *InterviewUsecase) Get(userID, id string) (*model.Interview, error) {
	interview, err := uc.interviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if interview.UserID != userID {
		return nil, ErrNotOwner
	}
	return interview, nil
}

func (uc *InterviewUsecase) List(userID string, page, pageSize int) ([]model.Interview, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return uc.interviews.ListByUser(userID, page, pageSize)
}

func (uc *InterviewUsecase) Delete(userID, id string) error {
	interview, err := uc.interviews.FindByID(id)
	if err != nil {
		return err
	}
	if interview.UserID != userID {
		return ErrNotOwner
	}
	return uc.interviews.Delete(id, userID)
}

// ParseResume mengekstrak teks dari file upload lalu minta LLM menebak
// profil kerja untuk auto-fill form.
func (uc *InterviewUsecase) ParseResume(ctx context.Context, data []byte, contentType string) (*dto.ResumeParseDTO, error) {
	text, err := util.ExtractText(data, contentType)
	if err != nil {
		return nil, err
	}
	aiText, err := uc.generator.GenerateContent(ctx, prompt.ResumeAutoFill(text))
	if err != nil {
		return nil, fmt.Errorf("resume auto-fill: %w", err)
	}
	profile, err := normalizer.Object[dto.ResumeProfile](aiText)
	if err != nil {
		return nil, fmt.Errorf("parse resume profile: %w", err)
	}
	return &dto.ResumeParseDTO{Resume: text, Profile: profile}, nil
}
