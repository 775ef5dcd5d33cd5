package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shakti_backend/internal/config"
	"shakti_backend/internal/util"
)

// languageCodes maps human-readable language names to ISO 639-1 codes.
// Names the table doesn't know fall through as lower-cased passthrough, so
// a caller can also send a code directly.
var languageCodes = map[string]string{
	"english":   "en",
	"hindi":     "hi",
	"bengali":   "bn",
	"telugu":    "te",
	"tamil":     "ta",
	"marathi":   "mr",
	"gujarati":  "gu",
	"kannada":   "kn",
	"malayalam": "ml",
	"punjabi":   "pa",
	"odia":      "or",
	"assamese":  "as",
	"urdu":      "ur",
}

// LanguageCode resolves a language name to its ISO code.
func LanguageCode(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if code, ok := languageCodes[key]; ok {
		return code
	}
	return key
}

// TranslateService is a client for a MyMemory-style free-text translation
// endpoint.
type TranslateService struct {
	config config.TranslateConfig
	client *http.Client
}

func NewTranslateService(cfg config.TranslateConfig) *TranslateService {
	return &TranslateService{config: cfg, client: &http.Client{}}
}

type TranslateRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type TranslateReply struct {
	TranslatedText string `json:"translatedText"`
	LanguageCode   string `json:"languageCode"`
}

type translateResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}

// Translate translates English text into the target language. Empty text
// is rejected before any network call; an empty upstream result is treated
// as a failure.
func (s *TranslateService) Translate(ctx context.Context, text, language string) (*TranslateReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, util.ErrEmptyText
	}

	code := LanguageCode(language)

	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		s.config.BaseURL,
		url.QueryEscape(text),
		url.QueryEscape("en|"+code),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result translateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	translated := strings.TrimSpace(result.ResponseData.TranslatedText)
	if translated == "" {
		return nil, fmt.Errorf("translation API returned no text")
	}

	return &TranslateReply{
		TranslatedText: translated,
		LanguageCode:   code,
	}, nil
}
