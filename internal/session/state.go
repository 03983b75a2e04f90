package session

// State adalah satu nilai eksplisit untuk posisi flow rekaman, menggantikan
// kombinasi flag recording/evaluating/follow-up yang bisa saling bertabrakan.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateEvaluating
	StateShowingResult
	StateFollowUpPending
	StateSaved
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEvaluating:
		return "evaluating"
	case StateShowingResult:
		return "showing_result"
	case StateFollowUpPending:
		return "follow_up_pending"
	case StateSaved:
		return "saved"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Evaluation adalah hasil penilaian AI untuk satu percobaan jawaban.
// Transien: baru dipersist saat user konfirmasi save.
type Evaluation struct {
	Ratings          int    `json:"ratings"`
	Feedback         string `json:"feedback"`
	FollowUpQuestion string `json:"followUpQuestion,omitempty"`
	Confidence       int    `json:"confidence,omitempty"`
	Tone             string `json:"tone,omitempty"`
	Clarity          int    `json:"clarity,omitempty"`
	ResumeFeedback   string `json:"resumeFeedback,omitempty"`
}

// Event adalah pesan server -> client yang dikirim lewat websocket sesi.
type Event struct {
	Type             string      `json:"type"` // state | tick | transcript | notice | evaluation | saved
	State            string      `json:"state,omitempty"`
	TimeLeft         int         `json:"time_left"`
	Transcript       string      `json:"transcript,omitempty"`
	Notice           string      `json:"notice,omitempty"`
	Evaluation       *Evaluation `json:"evaluation,omitempty"`
	FollowUpQuestion string      `json:"follow_up_question,omitempty"`
	WebcamOn         bool        `json:"webcam_on,omitempty"`
}

// Notices yang dikenal client.
const (
	NoticeTimeUp           = "times_up"
	NoticeAnswerTooShort   = "answer_too_short"
	NoticeFollowUpRequired = "follow_up_required"
	NoticeEvaluationFailed = "evaluation_failed"
	NoticeAlreadyAnswered  = "already_answered"
	NoticeSaveFailed       = "save_failed"
	NoticeSaved            = "answer_saved"
	NoticeWebcamError      = "webcam_error"
)

// Listener menerima event sesi; di produksi ini adalah writer websocket.
type Listener func(Event)
