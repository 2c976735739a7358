package content

import (
	"github.com/abhisek/safeguard/internal/quiz"
)

// Catalog is the validated, read-only training content.
type Catalog struct {
	version    string
	modules    []Module
	byID       map[string]int
	questions  []quiz.Question
	contacts   []Contact
	safetyTips []Note
	highlights []Note
	features   []Feature
}

func newCatalog(doc *document) *Catalog {
	c := &Catalog{
		version:    doc.Version,
		modules:    doc.Modules,
		byID:       make(map[string]int, len(doc.Modules)),
		questions:  make([]quiz.Question, 0, len(doc.Quiz)),
		contacts:   doc.Contacts,
		safetyTips: doc.SafetyTips,
		highlights: doc.Highlights,
		features:   doc.Features,
	}
	for i, m := range doc.Modules {
		c.byID[m.ID] = i
	}
	for _, q := range doc.Quiz {
		c.questions = append(c.questions, quiz.Question{
			ID:           q.ID,
			Prompt:       q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.Correct,
			Explanation:  q.Explanation,
		})
	}
	return c
}

// Version returns the content document version.
func (c *Catalog) Version() string { return c.version }

// Modules returns the learning modules in catalog order.
func (c *Catalog) Modules() []Module { return c.modules }

// Module looks up a module by ID.
func (c *Catalog) Module(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i], true
}

// QuizQuestions returns a fresh copy of the quiz question set.
func (c *Catalog) QuizQuestions() []quiz.Question {
	out := make([]quiz.Question, len(c.questions))
	for i, q := range c.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Contacts returns the emergency contacts.
func (c *Catalog) Contacts() []Contact { return c.contacts }

// SafetyTips returns the tips shown on the emergency screen.
func (c *Catalog) SafetyTips() []Note { return c.safetyTips }

// Highlights returns the "why interactive learning" notes.
func (c *Catalog) Highlights() []Note { return c.highlights }

// Features returns the home screen feature entries.
func (c *Catalog) Features() []Feature { return c.features }

// TotalLessons counts lessons across all modules.
func (c *Catalog) TotalLessons() int {
	n := 0
	for _, m := range c.modules {
		n += m.LessonCount()
	}
	return n
}
