package mockup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voicesketch/internal/metrics"
)

// LocalGenerator renders one of the built-in templates without calling any
// external service.
type LocalGenerator struct {
	log *zap.Logger
}

// NewLocalGenerator returns a LocalGenerator. A nil log discards output.
func NewLocalGenerator(log *zap.Logger) *LocalGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &LocalGenerator{log: log}
}

// Generate classifies the prompt and renders the matching template. The
// credential is ignored. The label is the category name.
func (g *LocalGenerator) Generate(_ context.Context, prompt, _ string) (string, string) {
	start := time.Now()
	category := Classify(prompt)
	color := ExtractColor(prompt)

	doc, err := Render(category, color, prompt)
	if err != nil {
		g.log.Error("local render failed", zap.String("category", string(category)), zap.Error(err))
		metrics.ObserveGeneration(metrics.ModeLocal, metrics.OutcomeError, time.Since(start))
		return ErrorDocument("System Error", "Critical failure: "+err.Error(), ""), ErrorLabel
	}

	g.log.Debug("rendered local mockup",
		zap.String("category", string(category)),
		zap.String("color", string(color)),
	)
	metrics.ObserveGeneration(metrics.ModeLocal, metrics.OutcomeSuccess, time.Since(start))
	return doc, string(category)
}
