package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/mock-interview/internal/dto"
	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/fadilmartias/mock-interview/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

type memInterviewStore struct {
	interviews map[string]*model.Interview
}

func newMemInterviewStore() *memInterviewStore {
	return &memInterviewStore{interviews: map[string]*model.Interview{}}
}

func (s *memInterviewStore) Create(interview *model.Interview) error {
	interview.ID = uuid.New()
	s.interviews[interview.ID.String()] = interview
	return nil
}

func (s *memInterviewStore) Update(interview *model.Interview) error {
	s.interviews[interview.ID.String()] = interview
	return nil
}

func (s *memInterviewStore) FindByID(id string) (*model.Interview, error) {
	interview, ok := s.interviews[id]
	if !ok {
		return nil, assert.AnError
	}
	return interview, nil
}

func (s *memInterviewStore) ListByUser(userID string, page, pageSize int) ([]model.Interview, int64, error) {
	var out []model.Interview
	for _, i := range s.interviews {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, int64(len(out)), nil
}

func (s *memInterviewStore) Delete(id, userID string) error {
	delete(s.interviews, id)
	return nil
}

func validRequest() dto.InterviewRequest {
	return dto.InterviewRequest{
		Position:      "Backend Engineer",
		Description:   "Designs and builds APIs",
		Experience:    4,
		TechStack:     "Go, PostgreSQL",
		InterviewType: "Technical",
	}
}

const questionsJSON = `[
  {"question": "q1", "answer": "a1"},
  {"question": "q2", "answer": "a2"},
  {"question": "q3", "answer": "a3"},
  {"question": "q4", "answer": "a4"},
  {"question": "q5", "answer": "a5"}
]`

func TestCreateGeneratesAndPersistsQuestions(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + questionsJSON + "\n```"}
	store := newMemInterviewStore()
	uc := NewInterviewUsecase(store, gen)

	interview, err := uc.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err)
	require.Len(t, interview.Questions, 5)
	assert.Equal(t, "q1", interview.Questions[0].Question)
	assert.Equal(t, "user-1", interview.UserID)
	assert.Len(t, store.interviews, 1)
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	gen := &stubGenerator{response: questionsJSON}
	uc := NewInterviewUsecase(newMemInterviewStore(), gen)

	req := validRequest()
	req.InterviewType = "Casual"
	req.Description = "short"

	_, err := uc.Create(context.Background(), "user-1", req)
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Errors, "interview_type")
	assert.Contains(t, formErr.Errors, "description")
	assert.Empty(t, gen.prompts, "no AI call before validation passes")
}

func TestCreateSurfacesUnparseableResponse(t *testing.T) {
	gen := &stubGenerator{response: "I cannot help with that."}
	store := newMemInterviewStore()
	uc := NewInterviewUsecase(store, gen)

	_, err := uc.Create(context.Background(), "user-1", validRequest())
	require.Error(t, err)
	assert.Empty(t, store.interviews, "nothing persisted on failure")
}

func TestUpdateRegeneratesQuestionsAndChecksOwner(t *testing.T) {
	gen := &stubGenerator{response: questionsJSON}
	store := newMemInterviewStore()
	uc := NewInterviewUsecase(store, gen)

	interview, err := uc.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "someone-else", interview.ID.String(), validRequest())
	assert.ErrorIs(t, err, ErrNotOwner)

	req := validRequest()
	req.Position = "Staff Engineer"
	updated, err := uc.Update(context.Background(), "user-1", interview.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Position)
	assert.Len(t, gen.prompts, 2, "edit regenerates questions")
}

func TestParseResumeAutoFill(t *testing.T) {
	gen := &stubGenerator{response: `{"position":"Data Engineer","description":"Builds pipelines","experience":3,"techStack":"Python, Spark"}`}
	uc := NewInterviewUsecase(newMemInterviewStore(), gen)

	parsed, err := uc.ParseResume(context.Background(), []byte("resume body text"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "resume body text", parsed.Resume)
	assert.Equal(t, "Data Engineer", parsed.Profile.Position)
	assert.Equal(t, 3, parsed.Profile.Experience)
}

func TestParseResumeUnsupportedType(t *testing.T) {
	gen := &stubGenerator{}
	uc := NewInterviewUsecase(newMemInterviewStore(), gen)

	_, err := uc.ParseResume(context.Background(), []byte{0x89, 0x50}, "image/png")
	assert.ErrorIs(t, err, util.ErrUnsupportedFormat)
	assert.Empty(t, gen.prompts)
}
