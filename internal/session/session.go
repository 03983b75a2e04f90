// Package session menjalankan state machine satu siklus tanya-jawab:
// rekam dengan countdown, kumpulkan transkrip, evaluasi AI, follow-up
// opsional satu level, lalu simpan atau buang.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/fadilmartias/mock-interview/internal/normalizer"
	"github.com/fadilmartias/mock-interview/internal/prompt"
	"github.com/fadilmartias/mock-interview/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	recordingSeconds = 60
	minAnswerChars   = 30
)

// AnswerStore adalah bagian repository yang dibutuhkan sesi.
type AnswerStore interface {
	Create(answer *model.UserAnswer) error
	ExistsFor(userID, question string) (bool, error)
}

type Session struct {
	mu sync.Mutex

	userID      string
	interviewID uuid.UUID
	question    model.Question
	resume      string

	generator service.TextGenerator
	answers   AnswerStore
	listener  Listener

	state            State
	round            int // naik tiap stop/restart; tick & hasil evaluasi ronde lama dibuang
	followUp         bool
	followUpQuestion string
	transcript       []string
	timeLeft         int
	evaluation       *Evaluation
	webcamOn         bool
	stopTicker       chan struct{}
}

func New(userID string, interviewID uuid.UUID, question model.Question, resume string,
	generator service.TextGenerator, answers AnswerStore, listener Listener) *Session {
	return &Session{
		userID:      userID,
		interviewID: interviewID,
		question:    question,
		resume:      resume,
		generator:   generator,
		answers:     answers,
		listener:    listener,
		state:       StateIdle,
		timeLeft:    recordingSeconds,
	}
}

type eventKind int

const (
	evStart eventKind = iota
	evTranscript
	evStop
	evTick
	evRestart
	evSave
	evDiscard
	evEvaluationDone
	evWebcam
	evWebcamError
)

type input struct {
	kind       eventKind
	transcript string
	round      int
	eval       *Evaluation
	evalFailed bool
	webcamOn   bool
}

// Exported API: tiap operasi masuk lewat satu titik mutasi (dispatch).

func (s *Session) Start()                 { s.dispatch(input{kind: evStart}) }
func (s *Session) Transcript(text string) { s.dispatch(input{kind: evTranscript, transcript: text}) }
func (s *Session) Stop()                  { s.dispatch(input{kind: evStop}) }
func (s *Session) Restart()               { s.dispatch(input{kind: evRestart}) }
func (s *Session) Save()                  { s.dispatch(input{kind: evSave}) }
func (s *Session) Discard()               { s.dispatch(input{kind: evDiscard}) }
func (s *Session) SetWebcam(on bool)      { s.dispatch(input{kind: evWebcam, webcamOn: on}) }
func (s *Session) ReportWebcamError()     { s.dispatch(input{kind: evWebcamError}) }
func (s *Session) tick(round int)         { s.dispatch(input{kind: evTick, round: round}) }

// Close membereskan sesi saat koneksi putus: ticker berhenti dan hasil
// evaluasi yang masih terbang dibuang.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTicker()
	s.round++
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) dispatch(ev input) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.kind {
	case evStart:
		s.startRecording()
	case evTranscript:
		if s.state != StateRecording {
			return
		}
		s.transcript = append(s.transcript, ev.transcript)
		s.emit(Event{Type: "transcript", Transcript: s.joinedTranscript()})
	case evStop:
		s.stopRecording(false)
	case evTick:
		if ev.round != s.round || s.state != StateRecording {
			return
		}
		s.timeLeft--
		s.emit(Event{Type: "tick", TimeLeft: s.timeLeft})
		if s.timeLeft <= 0 {
			s.emit(Event{Type: "notice", Notice: NoticeTimeUp})
			s.stopRecording(true)
		}
	case evRestart:
		s.restart()
	case evSave:
		s.save()
	case evDiscard:
		s.cancelTicker()
		s.round++
		s.setState(StateDiscarded)
	case evEvaluationDone:
		if ev.round != s.round || s.state != StateEvaluating {
			return // hasil dari ronde yang sudah dibatalkan
		}
		if ev.evalFailed {
			s.emit(Event{Type: "notice", Notice: NoticeEvaluationFailed})
		}
		s.finishEvaluation(ev.eval)
	case evWebcam:
		s.webcamOn = ev.webcamOn
	case evWebcamError:
		s.webcamOn = false
		s.emit(Event{Type: "notice", Notice: NoticeWebcamError})
	}
}

func (s *Session) startRecording() {
	if s.state != StateIdle && s.state != StateFollowUpPending {
		return
	}
	s.timeLeft = recordingSeconds
	s.setState(StateRecording)
	s.startTicker()
}

// stopRecording menutup fase rekam, baik manual maupun karena timer habis.
// Kedua jalur memakai validasi panjang jawaban yang sama.
func (s *Session) stopRecording(auto bool) {
	if s.state != StateRecording {
		return
	}
	s.cancelTicker()
	s.round++

	answer := s.joinedTranscript()
	if len(answer) < minAnswerChars {
		s.emit(Event{Type: "notice", Notice: NoticeAnswerTooShort})
		if s.followUp {
			s.setState(StateFollowUpPending)
		} else {
			s.setState(StateIdle)
		}
		return
	}

	var p string
	if s.followUp && s.followUpQuestion != "" {
		p = prompt.EvaluateFollowUp(s.followUpQuestion, answer, s.question.Question)
	} else {
		p = prompt.EvaluateAnswer(s.question, answer, s.resume)
	}

	s.setState(StateEvaluating)

	round := s.round
	go s.evaluate(round, p)
}

// evaluate jalan di goroutine sendiri; hasilnya kembali lewat dispatch
// supaya tetap satu titik mutasi. Kegagalan didegradasi, tidak dilempar.
func (s *Session) evaluate(round int, p string) {
	text, err := s.generator.GenerateContent(context.Background(), p)
	if err == nil {
		eval, perr := normalizer.Object[Evaluation](text)
		if perr == nil {
			s.dispatch(input{kind: evEvaluationDone, round: round, eval: &eval})
			return
		}
		err = perr
	}
	logrus.WithError(err).Warn("answer evaluation failed")
	s.dispatch(input{
		kind:       evEvaluationDone,
		round:      round,
		eval:       &Evaluation{Ratings: 0, Feedback: "Error generating feedback"},
		evalFailed: true,
	})
}

func (s *Session) finishEvaluation(eval *Evaluation) {
	s.evaluation = eval
	if eval.FollowUpQuestion != "" && !s.followUp {
		s.followUp = true
		s.followUpQuestion = eval.FollowUpQuestion
		s.transcript = nil
		s.emit(Event{Type: "notice", Notice: NoticeFollowUpRequired, FollowUpQuestion: eval.FollowUpQuestion})
		s.setState(StateFollowUpPending)
		return
	}
	// ronde follow-up selalu berakhir di sini, walaupun responnya minta
	// follow-up lagi; kedalaman follow-up cuma satu
	s.emit(Event{Type: "evaluation", Evaluation: eval})
	s.setState(StateShowingResult)
}

func (s *Session) save() {
	if s.state != StateShowingResult || s.evaluation == nil {
		return
	}

	exists, err := s.answers.ExistsFor(s.userID, s.question.Question)
	if err != nil {
		logrus.WithError(err).Error("duplicate check failed")
		s.emit(Event{Type: "notice", Notice: NoticeSaveFailed})
		return
	}
	// hasil follow-up round boleh melewati duplicate check
	if exists && !s.followUp {
		s.emit(Event{Type: "notice", Notice: NoticeAlreadyAnswered})
		return
	}

	resumeFeedback := s.evaluation.ResumeFeedback
	if resumeFeedback == "" {
		resumeFeedback = "Not available"
	}
	answer := &model.UserAnswer{
		InterviewID:    s.interviewID,
		UserID:         s.userID,
		Question:       s.question.Question,
		CorrectAns:     s.question.Answer,
		UserAns:        s.joinedTranscript(),
		Feedback:       s.evaluation.Feedback,
		Rating:         s.evaluation.Ratings,
		Confidence:     s.evaluation.Confidence,
		Tone:           s.evaluation.Tone,
		Clarity:        s.evaluation.Clarity,
		ResumeFeedback: resumeFeedback,
		FollowUp:       s.followUp,
		CreatedAt:      time.Now(),
	}
	if err := s.answers.Create(answer); err != nil {
		logrus.WithError(err).Error("save answer failed")
		s.emit(Event{Type: "notice", Notice: NoticeSaveFailed})
		return // evaluasi tetap di memori, user bisa coba save lagi
	}

	s.transcript = nil
	s.evaluation = nil
	s.followUp = false
	s.followUpQuestion = ""
	s.emit(Event{Type: "saved", Notice: NoticeSaved})
	s.setState(StateSaved)
}

// restart boleh dari state mana pun: buang percobaan berjalan dan langsung
// mulai rekaman baru.
func (s *Session) restart() {
	s.cancelTicker()
	s.round++
	s.followUp = false
	s.followUpQuestion = ""
	s.transcript = nil
	s.evaluation = nil
	s.timeLeft = recordingSeconds
	s.setState(StateRecording)
	s.startTicker()
}

func (s *Session) startTicker() {
	stop := make(chan struct{})
	s.stopTicker = stop
	round := s.round
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				s.tick(round)
			}
		}
	}()
}

func (s *Session) cancelTicker() {
	if s.stopTicker != nil {
		close(s.stopTicker)
		s.stopTicker = nil
	}
}

func (s *Session) joinedTranscript() string {
	return strings.Join(s.transcript, " ")
}

func (s *Session) setState(state State) {
	s.state = state
	s.emit(Event{Type: "state", State: state.String(), TimeLeft: s.timeLeft, WebcamOn: s.webcamOn})
}

func (s *Session) emit(ev Event) {
	if s.listener != nil {
		s.listener(ev)
	}
}
