package handler

import (
	"strconv"
	"sync"

	"github.com/fadilmartias/mock-interview/internal/middleware"
	"github.com/fadilmartias/mock-interview/internal/service"
	"github.com/fadilmartias/mock-interview/internal/session"
	"github.com/fadilmartias/mock-interview/internal/usecase"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SessionHandler meng-host satu recording flow per koneksi websocket:
// satu koneksi = satu pertanyaan yang sedang dijawab.
type SessionHandler struct {
	interviews *usecase.InterviewUsecase
	answers    session.AnswerStore
	generator  service.TextGenerator
}

func NewSessionHandler(interviews *usecase.InterviewUsecase, answers session.AnswerStore, generator service.TextGenerator) *SessionHandler {
	return &SessionHandler{interviews: interviews, answers: answers, generator: generator}
}

func (h *SessionHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/interviews/:id/questions/:index",
		middleware.AuthRequired(),
		func(c *fiber.Ctx) error {
			c.Locals("userID", middleware.GetUserID(c))
			return c.Next()
		},
		websocket.New(h.serve),
	)
}

// clientMessage adalah pesan client -> server di websocket sesi.
type clientMessage struct {
	Type   string            `json:"type"` // start | transcript | stop | restart | save | discard | webcam | webcam_error
	Result *transcriptResult `json:"result,omitempty"`
	On     bool              `json:"on,omitempty"`
}

// transcriptResult adalah hasil terstruktur dari engine speech-to-text.
// Pesan transkrip tanpa objek result (string informasi) dibuang.
type transcriptResult struct {
	Transcript string `json:"transcript"`
	IsFinal    bool   `json:"is_final,omitempty"`
}

// sessionCommands adalah operasi sesi yang bisa dipicu client.
type sessionCommands interface {
	Start()
	Transcript(text string)
	Stop()
	Restart()
	Save()
	Discard()
	SetWebcam(on bool)
	ReportWebcamError()
}

// dispatchClientMessage menerjemahkan satu pesan client ke operasi sesi.
// Return true kalau koneksi harus ditutup.
func dispatchClientMessage(sess sessionCommands, msg clientMessage) bool {
	switch msg.Type {
	case "start":
		sess.Start()
	case "transcript":
		if msg.Result != nil && msg.Result.Transcript != "" {
			sess.Transcript(msg.Result.Transcript)
		}
	case "stop":
		sess.Stop()
	case "restart":
		sess.Restart()
	case "save":
		sess.Save()
	case "discard":
		sess.Discard()
		return true
	case "webcam":
		sess.SetWebcam(msg.On)
	case "webcam_error":
		sess.ReportWebcamError()
	}
	return false
}

func (h *SessionHandler) serve(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)

	interview, err := h.interviews.Get(userID, c.Params("id"))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"type": "error", "message": "interview not found"})
		return
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 || index >= len(interview.Questions) {
		_ = c.WriteJSON(fiber.Map{"type": "error", "message": "question index out of range"})
		return
	}

	// satu writer mutex: event sesi datang dari goroutine ticker/evaluasi
	var wmu sync.Mutex
	listener := func(ev session.Event) {
		wmu.Lock()
		defer wmu.Unlock()
		if err := c.WriteJSON(ev); err != nil {
			logrus.WithError(err).Debug("session event write failed")
		}
	}

	sess := session.New(userID, interview.ID, interview.Questions[index], interview.Resume,
		h.generator, h.answers, listener)
	defer sess.Close()

	listener(session.Event{Type: "state", State: sess.State().String(), TimeLeft: 60})

	for {
		var msg clientMessage
		if err := c.ReadJSON(&msg); err != nil {
			return
		}
		if dispatchClientMessage(sess, msg) {
			return
		}
	}
}
