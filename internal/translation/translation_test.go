package translation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_KnownPhrases(t *testing.T) {
	s := NewStub(0)

	res, err := s.Translate(context.Background(), "Bonjour à tous ! Je suis très heureux de partager cette journée avec vous.", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello everyone! I am very happy to share this day with you.", res.TranslatedText)
	assert.Contains(t, res.TranslatedText, "Hello")
	assert.Equal(t, "English", res.Language)
}

func TestTranslate_PhrasesFollowDictionaryOrder(t *testing.T) {
	s := NewStub(0)

	res, err := s.Translate(context.Background(), "C'est difficile mais passionnant ! Bonjour à tous !", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello everyone! It's difficult but exciting!", res.TranslatedText)
}

func TestTranslate_WordFallback(t *testing.T) {
	s := NewStub(0)

	res, err := s.Translate(context.Background(), "Bonjour, belle journée au soleil", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello, beautiful day au sun", res.TranslatedText)
	assert.Equal(t, "English", res.Language)
}

func TestTranslate_NoMatchReturnsInput(t *testing.T) {
	res, err := NewStub(0).Translate(context.Background(), "rien à voir", "en")
	require.NoError(t, err)
	assert.Equal(t, "rien à voir", res.TranslatedText)
}

func TestTranslate_UnsupportedTarget(t *testing.T) {
	res, err := NewStub(0).Translate(context.Background(), "Bonjour", "de")
	require.NoError(t, err)
	assert.Equal(t, "Translation to de is not supported in this demo.", res.TranslatedText)
	assert.Equal(t, "Unsupported", res.Language)
}

func TestTranslate_WaitsForLatency(t *testing.T) {
	latency := 30 * time.Millisecond
	start := time.Now()

	_, err := NewStub(latency).Translate(context.Background(), "Bonjour", "en")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), latency)
}

func TestTranslate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStub(time.Minute).Translate(ctx, "Bonjour", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
