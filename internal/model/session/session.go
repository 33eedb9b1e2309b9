package session

import "time"

// Mode records which pipeline produced the session's current output.
type Mode string

const (
	// ModeNone marks a session with no generated output yet.
	ModeNone       Mode = ""
	ModeSummary    Mode = "summary"
	ModeParaphrase Mode = "paraphrase"
)

// Session captures the transient editor state behind one browser tab.
type Session struct {
	ID         string    `json:"id"`
	InputText  string    `json:"inputText"`
	OutputText string    `json:"outputText"`
	Mode       Mode      `json:"mode"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
