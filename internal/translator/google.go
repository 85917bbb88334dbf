package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type GoogleEngine struct {
	credentialsFile string
}

// NewGoogleEngine builds a Google Translate adapter. credentialsFile may be
// empty to use application default credentials.
func NewGoogleEngine(credentialsFile string) *GoogleEngine {
	return &GoogleEngine{credentialsFile: credentialsFile}
}

func (e *GoogleEngine) Name() string {
	return "google"
}

func (e *GoogleEngine) options() []option.ClientOption {
	var opts []option.ClientOption
	if e.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(e.credentialsFile))
	}
	return opts
}

func (e *GoogleEngine) Translate(ctx context.Context, req Request) (*Result, error) {
	result := &Result{}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		return nil, fmt.Errorf("invalid target language %q: %w", req.TargetLang, err)
	}

	client, err := translate.NewClient(ctx, e.options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	var opts *translate.Options
	if req.SourceLang != "" && req.SourceLang != "auto" {
		sourceTag, err := language.Parse(req.SourceLang)
		if err != nil {
			return nil, fmt.Errorf("invalid source language %q: %w", req.SourceLang, err)
		}
		opts = &translate.Options{Source: sourceTag}
	}

	translations, err := client.Translate(ctx, []string{req.Text}, targetTag, opts)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return nil, fmt.Errorf("no translation returned")
	}

	result.Text = translations[0].Text
	if opts == nil {
		result.DetectedLang = translations[0].Source.String()
	}
	return result, nil
}

func (e *GoogleEngine) Languages(ctx context.Context) ([]string, error) {
	client, err := translate.NewClient(ctx, e.options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	supported, err := client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}

	codes := make([]string, 0, len(supported))
	for _, l := range supported {
		codes = append(codes, l.Tag.String())
	}
	return codes, nil
}
