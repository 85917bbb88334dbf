// Package detector wraps lingua-go language detection. Building the
// detector is expensive; construct once and reuse.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lowercase ISO 639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Confidence returns the detected ISO code together with the detector's
// confidence for it, in [0, 1].
func (d *Detector) Confidence(text string) (string, float64, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", 0, false
	}
	code := strings.ToLower(lang.IsoCode639_1().String())
	return code, d.detector.ComputeLanguageConfidence(text, lang), true
}
