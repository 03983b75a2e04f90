package handler

import (
	"errors"
	"io"
	"time"

	"github.com/fadilmartias/mock-interview/internal/dto"
	"github.com/fadilmartias/mock-interview/internal/middleware"
	"github.com/fadilmartias/mock-interview/internal/normalizer"
	"github.com/fadilmartias/mock-interview/internal/response"
	"github.com/fadilmartias/mock-interview/internal/usecase"
	"github.com/fadilmartias/mock-interview/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxUploadBytes = 5 * 1024 * 1024

type InterviewHandler struct {
	uc       *usecase.InterviewUsecase
	feedback *usecase.FeedbackUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase, feedback *usecase.FeedbackUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc, feedback: feedback}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/interviews", middleware.AuthRequired())
	api.Post("/", middleware.RateLimiter(5, 1*time.Minute), h.Create)
	api.Get("/", h.List)
	api.Get("/:id", h.Get)
	api.Put("/:id", middleware.RateLimiter(5, 1*time.Minute), h.Update)
	api.Delete("/:id", h.Delete)
	api.Get("/:id/feedback", h.Feedback)

	app.Post("/resume/parse", middleware.AuthRequired(), middleware.RateLimiter(3, 1*time.Minute), h.ParseResume)
}

// handleError memetakan error domain ke status HTTP. Gagal generate/parse
// tidak meninggalkan state apa pun, jadi semua aman di-retry oleh user.
func (h *InterviewHandler) handleError(c *fiber.Ctx, err error, message string) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		}, err)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, usecase.ErrNotOwner):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "interview not found",
		}, err)
	case errors.Is(err, util.ErrUnsupportedFormat):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unsupported file type, upload PDF, DOCX, or TXT",
		}, err)
	case errors.Is(err, util.ErrExtraction):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to extract file text",
		}, err)
	case errors.Is(err, normalizer.ErrNoStructure), errors.Is(err, normalizer.ErrMalformedJSON):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "AI response could not be parsed, please try again",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: message,
		}, err)
	}
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var req dto.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	interview, err := h.uc.Create(c.Context(), middleware.GetUserID(c), req)
	if err != nil {
		return h.handleError(c, err, "failed to generate interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Mock interview generated successfully",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) Update(c *fiber.Ctx) error {
	var req dto.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	interview, err := h.uc.Update(c.Context(), middleware.GetUserID(c), c.Params("id"), req)
	if err != nil {
		return h.handleError(c, err, "failed to update interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Changes saved successfully",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	interview, err := h.uc.Get(middleware.GetUserID(c), c.Params("id"))
	if err != nil {
		return h.handleError(c, err, "failed to get interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview",
		Data:    dto.NewInterviewDTO(interview),
	})
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	// clamp di sini juga supaya nilai yang dipakai NewPagination
	// sama dengan yang dipakai query-nya
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", 10)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	interviews, total, err := h.uc.List(middleware.GetUserID(c), page, pageSize)
	if err != nil {
		return h.handleError(c, err, "failed to list interviews")
	}

	items := make([]dto.InterviewDTO, 0, len(interviews))
	for i := range interviews {
		items = append(items, dto.NewInterviewDTO(&interviews[i]))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list interviews",
		Data:       items,
		Pagination: response.NewPagination(page, pageSize, len(items), total),
	})
}

func (h *InterviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(middleware.GetUserID(c), c.Params("id")); err != nil {
		return h.handleError(c, err, "failed to delete interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview deleted",
	})
}

func (h *InterviewHandler) Feedback(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	// pastikan interview-nya memang milik user ini
	if _, err := h.uc.Get(userID, c.Params("id")); err != nil {
		return h.handleError(c, err, "failed to get interview")
	}

	feedback, err := h.feedback.Feedback(userID, c.Params("id"))
	if err != nil {
		return h.handleError(c, err, "failed to get feedback")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get feedback",
		Data:    feedback,
	})
}

// ParseResume menerima upload resume, ekstrak teksnya, dan auto-fill
// profil kerja lewat AI.
func (h *InterviewHandler) ParseResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > maxUploadBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: "resume file size is too large (max 5MB)",
		})
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}

	parsed, err := h.uc.ParseResume(c.Context(), data, file.Header.Get("Content-Type"))
	if err != nil {
		return h.handleError(c, err, "failed to parse resume")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Auto-filled details from resume",
		Data:    parsed,
	})
}
