// Package speech builds text-to-speech links for tutor answers.
//
// Speech is best-effort: when disabled every call reports models.ErrSpeechUnsupported
// and clients are expected to silently skip playback.
package speech

import (
	"fmt"
	"net/url"

	"github.com/padhoai/backend/internal/models"
)

// voiceCodes maps learner languages to Google Translate TTS voices.
// Regional languages without a voice of their own fall back to Hindi.
var voiceCodes = map[models.Language]string{
	models.LanguageEnglish:  "en",
	models.LanguageHindi:    "hi",
	models.LanguagePunjabi:  "pa",
	models.LanguageHaryanvi: "hi",
	models.LanguageKumauni:  "hi",
	models.LanguageGarhwali: "hi",
}

// Service creates Google Translate TTS URLs
type Service struct {
	enabled bool
	baseURL string
}

// NewService creates a new speech service
func NewService(enabled bool, baseURL string) *Service {
	return &Service{
		enabled: enabled,
		baseURL: baseURL,
	}
}

// AudioURL returns a URL that streams the text as MP3 in the learner's language
func (s *Service) AudioURL(text string, language models.Language) (string, error) {
	if !s.enabled || s.baseURL == "" {
		return "", models.ErrSpeechUnsupported
	}

	voice, ok := voiceCodes[language]
	if !ok {
		voice = "en"
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", voice)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	return s.baseURL + "?" + params.Encode(), nil
}
