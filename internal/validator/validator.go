// Package validator checks that engine output is written in the requested
// target language.
package validator

import (
	"fmt"
	"strings"

	"nkrane/internal/detector"
)

// minCheckLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and pass unchecked.
const minCheckLength = 20

// Validator checks translation output against an expected target language.
// The underlying detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// Check returns nil when text plausibly is in targetLang. Empty output is an
// error; short or undeterminable texts pass. A mismatch error names both the
// expected and the detected code.
func (v *Validator) Check(text, targetLang string) error {
	if targetLang == "" {
		return nil
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("translation is empty")
	}
	if len([]rune(trimmed)) < minCheckLength {
		return nil
	}

	detected, ok := v.det.DetectISO(trimmed)
	if !ok {
		return nil
	}
	if !strings.EqualFold(detected, targetLang) {
		return fmt.Errorf("expected %s but detected %s", targetLang, detected)
	}
	return nil
}
