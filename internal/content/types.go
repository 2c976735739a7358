package content

import (
	"fmt"

	"github.com/abhisek/safeguard/internal/nav"
)

// Module is a learning module: a titled, ordered list of lessons.
type Module struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons" validate:"required,min=1,dive"`
}

// LessonCount returns the number of lessons in the module.
func (m Module) LessonCount() int {
	return len(m.Lessons)
}

// TotalMinutes sums the lesson durations.
func (m Module) TotalMinutes() int {
	total := 0
	for _, l := range m.Lessons {
		total += l.DurationMinutes
	}
	return total
}

// Lesson is a single short lesson, optionally backed by a video.
type Lesson struct {
	Title           string `json:"title" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=1"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url" validate:"omitempty,url"`
}

// HasVideo reports whether the lesson has video content.
func (l Lesson) HasVideo() bool {
	return l.VideoURL != ""
}

// Duration formats the lesson length the way the lesson cards show it.
func (l Lesson) Duration() string {
	return fmt.Sprintf("%d min", l.DurationMinutes)
}

// Contact is an emergency service reachable by phone.
type Contact struct {
	Name        string `json:"name" validate:"required"`
	Number      string `json:"number" validate:"required"`
	Description string `json:"description"`
}

// TelURI returns the tel: URI used to dial the contact.
func (c Contact) TelURI() string {
	return "tel:" + c.Number
}

// Note is a titled short paragraph (safety tips, highlights).
type Note struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Feature is a home screen entry linking to a section.
type Feature struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Section     nav.Section `json:"section" validate:"oneof=home learn training emergency"`
}

// questionDoc is the on-disk shape of a quiz question.
type questionDoc struct {
	ID          string   `json:"id" validate:"required"`
	Prompt      string   `json:"prompt" validate:"required"`
	Options     []string `json:"options" validate:"len=4,dive,required"`
	Correct     int      `json:"correct" validate:"min=0"`
	Explanation string   `json:"explanation"`
}

// document is the on-disk content file.
type document struct {
	Version    string        `json:"version" validate:"required"`
	Modules    []Module      `json:"modules" validate:"unique=ID,dive"`
	Quiz       []questionDoc `json:"quiz" validate:"unique=ID,dive"`
	Contacts   []Contact     `json:"contacts" validate:"dive"`
	SafetyTips []Note        `json:"safety_tips" validate:"dive"`
	Highlights []Note        `json:"highlights" validate:"dive"`
	Features   []Feature     `json:"features" validate:"dive"`
}
