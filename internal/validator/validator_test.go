package validator

import "testing"

var v = New()

func TestCheck_MatchingLanguage(t *testing.T) {
	err := v.Check("The farmers harvested their crops before the rainy season started.", "en")
	if err != nil {
		t.Errorf("expected matching language to pass, got %v", err)
	}
}

func TestCheck_MismatchedLanguage(t *testing.T) {
	err := v.Check("Фермери зібрали врожай до початку сезону дощів цього року.", "en")
	if err == nil {
		t.Error("expected mismatch error for Cyrillic text against en")
	}
}

func TestCheck_EmptyTranslation(t *testing.T) {
	if err := v.Check("   ", "en"); err == nil {
		t.Error("expected error for empty translation")
	}
}

func TestCheck_ShortTextPasses(t *testing.T) {
	// Too short for reliable detection; accepted without validation.
	if err := v.Check("kookoo", "twi"); err != nil {
		t.Errorf("expected short text to pass, got %v", err)
	}
}

func TestCheck_NoTargetLanguage(t *testing.T) {
	if err := v.Check("anything at all", ""); err != nil {
		t.Errorf("expected empty target to pass, got %v", err)
	}
}
