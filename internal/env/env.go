// Package env bundles the collaborators every screen is built with.
package env

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/safeguard/internal/content"
	"github.com/abhisek/safeguard/internal/learn"
	"github.com/abhisek/safeguard/internal/location"
	"github.com/abhisek/safeguard/internal/quiz"
	"github.com/abhisek/safeguard/internal/store"
)

// Env is shared by all screens of one program run.
type Env struct {
	Ctx            context.Context
	Catalog        *content.Catalog
	Flags          store.FlagRepo
	Location       location.Provider
	Tracker        *learn.Tracker
	Log            zerolog.Logger
	GPSPromptDelay time.Duration

	// Rand, when set, shuffles quiz questions for each new session.
	Rand *rand.Rand
}

// Context returns Ctx, or context.Background when unset.
func (e *Env) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// QuizQuestions returns the catalog's questions, shuffled if Rand is set.
func (e *Env) QuizQuestions() []quiz.Question {
	qs := e.Catalog.QuizQuestions()
	if e.Rand != nil {
		qs = quiz.Shuffle(qs, e.Rand)
	}
	return qs
}

// ForTest returns an Env over the embedded catalog with in-memory flags,
// a static location and a silent logger.
func ForTest() (*Env, error) {
	cat, err := content.Default()
	if err != nil {
		return nil, err
	}
	return &Env{
		Ctx:            context.Background(),
		Catalog:        cat,
		Flags:          store.NewMemoryFlagRepo(),
		Location:       location.StaticProvider{Coords: location.Coordinates{Latitude: 28.6139, Longitude: 77.209}},
		Tracker:        learn.NewTracker(),
		Log:            zerolog.Nop(),
		GPSPromptDelay: 0,
	}, nil
}
