// Package orchestrator composes the terminology pipeline: protect glossary
// terms, delegate the marker-bearing text to an external translation engine,
// restore curated translations. Requests without a domain bypass the
// pipeline and go straight to the engine.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nkrane/internal/placeholder"
	"nkrane/internal/terminology"
	"nkrane/internal/translator"
)

type Request struct {
	Text       string
	SourceLang string
	TargetLang string
	Domain     string // empty means plain translation, no terminology control
}

type Result struct {
	ID           string
	Text         string // final text after marker restoration
	Original     string
	Preprocessed string // text as sent to the engine
	EngineText   string // raw engine output, before restoration
	SourceLang   string
	TargetLang   string
	Domain       string
	Engine       string

	// TermsReplaced counts the distinct glossary terms substituted during
	// preprocessing. LostMarkers lists markers the engine dropped or
	// corrupted; their terms could not be restored. Loss is a degradation,
	// not a failure.
	TermsReplaced int
	LostMarkers   []string
}

// PairNotSupportedError reports a translate request for a (domain, language)
// pair absent from the catalog. The engine is never called for such requests.
type PairNotSupportedError struct {
	Domain    string
	Language  string
	Available []terminology.Pair
}

func (e *PairNotSupportedError) Error() string {
	pairs := make([]string, 0, len(e.Available))
	for _, p := range e.Available {
		pairs = append(pairs, p.Domain+"/"+p.Language)
	}
	return fmt.Sprintf("domain %q with language %q not found, available pairs: [%s]",
		e.Domain, e.Language, strings.Join(pairs, " "))
}

// EngineError wraps a failure of the external translation engine. The cause
// is reachable via errors.Unwrap; callers may retry or fall back.
type EngineError struct {
	Engine string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

type Orchestrator struct {
	terms  *terminology.Store
	engine translator.Engine
}

// New builds an Orchestrator. terms may be nil when no request will carry a
// domain; domain-tagged requests against a nil store fail with
// PairNotSupportedError.
func New(terms *terminology.Store, engine translator.Engine) *Orchestrator {
	return &Orchestrator{terms: terms, engine: engine}
}

// Translate runs one request through the pipeline. With a domain the three
// steps run in fixed order: protect terms, call the engine on the rewritten
// text, restore markers. Without a domain the engine is called on the text
// as-is.
func (o *Orchestrator) Translate(ctx context.Context, req Request) (*Result, error) {
	result := &Result{
		ID:         uuid.New().String(),
		Original:   req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Domain:     req.Domain,
		Engine:     o.engine.Name(),
	}

	if req.Domain == "" {
		out, err := o.engine.Translate(ctx, translator.Request{
			Text:       req.Text,
			SourceLang: req.SourceLang,
			TargetLang: req.TargetLang,
		})
		if err != nil {
			return nil, &EngineError{Engine: o.engine.Name(), Err: err}
		}
		result.Preprocessed = req.Text
		result.EngineText = out.Text
		result.Text = out.Text
		return result, nil
	}

	if o.terms == nil || !o.terms.HasPair(req.Domain, req.TargetLang) {
		var available []terminology.Pair
		if o.terms != nil {
			available = o.terms.Pairs()
		}
		return nil, &PairNotSupportedError{
			Domain:    req.Domain,
			Language:  req.TargetLang,
			Available: available,
		}
	}

	table := o.terms.TermsFor(req.Domain, req.TargetLang)
	protected, mapping := placeholder.Protect(req.Text, table)
	result.Preprocessed = protected
	result.TermsReplaced = len(mapping)

	out, err := o.engine.Translate(ctx, translator.Request{
		Text:       protected,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		return nil, &EngineError{Engine: o.engine.Name(), Err: err}
	}

	result.EngineText = out.Text
	result.LostMarkers = placeholder.Missing(out.Text, mapping)
	result.Text = placeholder.Restore(out.Text, mapping)
	return result, nil
}

// BatchItem carries the outcome for one text of a batch, in input order.
type BatchItem struct {
	Index  int
	Result *Result
	Err    error
}

// TranslateBatch translates each text independently, in input order. A
// failing item does not abort the batch; inspect each item's Err.
func (o *Orchestrator) TranslateBatch(ctx context.Context, texts []string, sourceLang, targetLang, domain string) []BatchItem {
	items := make([]BatchItem, len(texts))
	for i, text := range texts {
		res, err := o.Translate(ctx, Request{
			Text:       text,
			SourceLang: sourceLang,
			TargetLang: targetLang,
			Domain:     domain,
		})
		items[i] = BatchItem{Index: i, Result: res, Err: err}
	}
	return items
}
