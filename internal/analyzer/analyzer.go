// Package analyzer runs the morphological analyzer over a query and groups
// the resulting tokens into display words.
package analyzer

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"yomu/internal/models"
)

// IPA feature layout: [0:5] POS path and conjugation type, [6] base, [7] reading, [8] pron.
const (
	featureBase    = 6
	featureReading = 7
	featurePron    = 8
)

// Analyzer splits text into words.
type Analyzer interface {
	Analyze(text string) models.Sentence
}

// Kagome is an Analyzer backed by kagome with the IPA dictionary.
type Kagome struct {
	t *tokenizer.Tokenizer
}

// NewKagome loads the IPA dictionary. This takes a noticeable moment and the
// result is safe for concurrent use, so build one per process.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

// Tokens returns the converted tokens of text in search mode. Token IDs are
// positions in the analyzed text, so a repeated word gets distinct IDs.
func (k *Kagome) Tokens(text string) []models.Token {
	ktoks := k.t.Analyze(text, tokenizer.Search)
	out := make([]models.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, convert(kt.Index, kt.Class.String(), kt.Surface, kt.Features()))
	}
	return out
}

// Analyze tokenizes text and segments it into words.
func (k *Kagome) Analyze(text string) models.Sentence {
	return Segment(k.Tokens(text))
}

func convert(id int, class, surface string, features []string) models.Token {
	pos := make([]string, models.MaxPOSDepth)
	for i := range pos {
		pos[i] = models.POSNotApplicable
		if i < len(features) && features[i] != "" {
			pos[i] = features[i]
		}
	}

	t := models.Token{
		ID:      id,
		Class:   models.TokenClass(class),
		Surface: surface,
		POS:     pos,
		Base:    surface,
	}
	if len(features) > featureBase && features[featureBase] != models.POSNotApplicable {
		t.Base = features[featureBase]
	}
	if len(features) > featureReading {
		t.Reading = features[featureReading]
	}
	if len(features) > featurePron {
		t.Pron = features[featurePron]
	}
	return t
}
