// Package translation provides a stand-in for a remote translation service.
package translation

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultLatency is the simulated round trip of a translation call.
	DefaultLatency = 600 * time.Millisecond
	// DefaultTarget is used when no target language is given.
	DefaultTarget = "en"

	languageEnglish     = "English"
	languageUnsupported = "Unsupported"
)

// Result is a translated text and the label of its language
type Result struct {
	TranslatedText string `json:"translated_text"`
	Language       string `json:"language"`
}

// Translator translates text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (Result, error)
}

type phrase struct {
	french, english string
}

// Known French phrases, matched as substrings in this order.
var phrases = []phrase{
	{"Bonjour à tous !", "Hello everyone!"},
	{"Je suis très heureux de partager cette journée avec vous.", "I am very happy to share this day with you."},
	{"Je viens de terminer mon nouveau projet et je suis très satisfait du résultat !", "I just finished my new project and I am very satisfied with the result!"},
	{"Quelle belle journée pour une promenade dans le parc !", "What a beautiful day for a walk in the park!"},
	{"Le soleil brille et les oiseaux chantent.", "The sun is shining and the birds are singing."},
	{"Je viens de découvrir un excellent restaurant près de chez moi.", "I just discovered an excellent restaurant near my home."},
	{"Je vous le recommande vivement !", "I highly recommend it!"},
	{"Aujourd'hui, j'ai commencé à apprendre une nouvelle langue.", "Today, I started learning a new language."},
	{"C'est difficile mais passionnant !", "It's difficult but exciting!"},
}

// Word substitutions applied when no phrase matches.
var words = []phrase{
	{"Bonjour", "Hello"},
	{"journée", "day"},
	{"heureux", "happy"},
	{"nouveau", "new"},
	{"belle", "beautiful"},
	{"soleil", "sun"},
	{"restaurant", "restaurant"},
}

// Stub is a dictionary-backed Translator with a fixed latency.
type Stub struct {
	latency time.Duration
}

// NewStub creates a Stub that waits latency before answering.
func NewStub(latency time.Duration) *Stub {
	if latency < 0 {
		latency = 0
	}
	return &Stub{latency: latency}
}

// Translate waits for the configured latency, then translates French into
// English. Other targets get a fixed "unsupported" answer. The only error is
// ctx ending before the latency elapsed.
func (s *Stub) Translate(ctx context.Context, text, targetLanguage string) (Result, error) {
	if err := s.wait(ctx); err != nil {
		return Result{}, errors.Wrap(err, "translation interrupted")
	}

	if targetLanguage == "" {
		targetLanguage = DefaultTarget
	}
	if targetLanguage != DefaultTarget {
		return Result{
			TranslatedText: "Translation to " + targetLanguage + " is not supported in this demo.",
			Language:       languageUnsupported,
		}, nil
	}
	return Result{TranslatedText: toEnglish(text), Language: languageEnglish}, nil
}

func (s *Stub) wait(ctx context.Context) error {
	if s.latency == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func toEnglish(text string) string {
	var matched []string
	for _, p := range phrases {
		if strings.Contains(text, p.french) {
			matched = append(matched, p.english)
		}
	}
	if out := strings.TrimSpace(strings.Join(matched, " ")); out != "" {
		return out
	}

	out := text
	for _, w := range words {
		out = strings.ReplaceAll(out, w.french, w.english)
	}
	return out
}
