package analysis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/store"
)

// LoggingAnalyzer is a decorator that records every analysis as an event.
type LoggingAnalyzer struct {
	inner     FaceAnalyzer
	eventRepo store.EventRepo
}

// WithLogging wraps a FaceAnalyzer with event logging.
func WithLogging(a FaceAnalyzer, repo store.EventRepo) FaceAnalyzer {
	return &LoggingAnalyzer{inner: a, eventRepo: repo}
}

func (l *LoggingAnalyzer) Analyze(ctx context.Context, photo *Photo, answers quiz.Answers) (*Result, error) {
	start := time.Now()

	r, err := l.inner.Analyze(ctx, photo, answers)

	data := store.AnalysisEventData{
		SessionID:  store.SessionFrom(ctx),
		Analyzer:   l.inner.Name(),
		PhotoBytes: photo.Size(),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if photo != nil {
		data.PhotoName = photo.Name
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Record cancelled calls too.
	logCtx := context.WithoutCancel(ctx)
	if logErr := l.eventRepo.AppendAnalysisRequest(logCtx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log analysis event: %v\n", logErr)
	}

	return r, err
}

func (l *LoggingAnalyzer) Name() string {
	return l.inner.Name()
}
