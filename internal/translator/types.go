// Package translator defines the external machine-translation boundary and
// adapters for concrete services.
package translator

import (
	"context"
	"time"
)

type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"` // empty or "auto" lets the engine detect
	TargetLang string `json:"target_lang"`
}

type Result struct {
	Text         string        `json:"text"`
	DetectedLang string        `json:"detected_lang,omitempty"`
	Latency      time.Duration `json:"latency"`
}

// Engine is a general-purpose machine translation service. Implementations
// must treat Request.Text as opaque text: numeric markers inserted by the
// terminology pipeline have to survive the round trip verbatim.
type Engine interface {
	Name() string
	Translate(ctx context.Context, req Request) (*Result, error)
	Languages(ctx context.Context) ([]string, error)
}
