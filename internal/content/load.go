package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/safeguard/internal/quiz"
)

//go:embed data/content.json
var defaultContent []byte

// SupportedMajor is the content document major version this build reads.
const SupportedMajor = "v1"

// ErrInvalidContent is matched by every validation failure from Load.
var ErrInvalidContent = errors.New("invalid content")

// ValidationError lists every problem found at one validation stage.
type ValidationError struct {
	Stage    string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidContent }

// Default returns the catalog built into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultContent))
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Open returns the catalog at path, or the built-in one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Load decodes and validates a content document.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, &ValidationError{Stage: "schema", Problems: []string{err.Error()}}
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Stage: "decode", Problems: []string{err.Error()}}
	}

	if problems := validateDocument(&doc); len(problems) > 0 {
		return nil, &ValidationError{Stage: "fields", Problems: problems}
	}

	if !semver.IsValid(doc.Version) || semver.Major(doc.Version) != SupportedMajor {
		return nil, &ValidationError{
			Stage:    "version",
			Problems: []string{fmt.Sprintf("unsupported content version %q (want %s.x.x)", doc.Version, SupportedMajor)},
		}
	}

	c := newCatalog(&doc)

	// Reject question data the quiz session would refuse.
	if _, err := quiz.NewSession(c.questions); err != nil {
		return nil, &ValidationError{Stage: "quiz", Problems: []string{err.Error()}}
	}

	return c, nil
}
