package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glowpro/glowpro/internal/quiz"
)

// FaceAnalyzer turns a face photo plus the quiz answers into a Result.
// Implementations may block; they must honor ctx cancellation.
type FaceAnalyzer interface {
	Analyze(ctx context.Context, photo *Photo, answers quiz.Answers) (*Result, error)

	// Name identifies the analyzer in the event log.
	Name() string
}

// Photo is an encoded image held in memory. Its contents are never
// inspected.
type Photo struct {
	Name string
	Data []byte
}

// Size returns the encoded size in bytes.
func (p *Photo) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}

// LoadPhoto reads the file at path into a Photo.
func LoadPhoto(path string) (*Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load photo: %w", err)
	}
	return &Photo{Name: filepath.Base(path), Data: data}, nil
}

// Result is the outcome of one face analysis. Scores are percentages.
type Result struct {
	Symmetry           int             `json:"symmetry"`
	AestheticPotential int             `json:"aestheticPotential"`
	SkinHydration      int             `json:"skinHydration"`
	PoresScore         int             `json:"poresScore"`
	TextureScore       int             `json:"textureScore"`
	FaceShape          string          `json:"faceShape"`
	Strengths          []string        `json:"strengths"`
	Improvements       []string        `json:"improvements"`
	Recommendations    Recommendations `json:"recommendations"`
}

// Recommendations are the styling suggestions of a Result. Beard is empty
// unless the analysis was made for a male profile.
type Recommendations struct {
	Haircut  string `json:"haircut"`
	Eyebrows string `json:"eyebrows"`
	Beard    string `json:"beard,omitempty"`
	Lighting string `json:"lighting"`
}

// HasBeard reports whether a beard recommendation is present.
func (r Recommendations) HasBeard() bool {
	return r.Beard != ""
}
