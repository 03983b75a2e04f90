package dto

// ResumeProfile adalah hasil auto-fill form interview dari teks resume.
type ResumeProfile struct {
	Position    string `json:"position"`
	Description string `json:"description"`
	Experience  int    `json:"experience"`
	TechStack   string `json:"techStack"`
}

type ResumeParseDTO struct {
	Resume  string        `json:"resume"`
	Profile ResumeProfile `json:"profile"`
}
