package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	visionpkg "github.com/Ophelia-lia/customer-system/vision"
)

// extractionPrompt is the free-text contract with the vision model: reply
// with one JSON object and nothing else.
const extractionPrompt = `You are a medical report parser. Extract the structured data from this report image and reply with a single JSON object, no prose and no markdown fences, in this shape:
{"date": "YYYY-MM-DD", "hospital": "...", "category": "...", "summary": "...", "items": [{"name": "...", "value": "...", "unit": "...", "reference": "...", "status": "normal|high|low"}]}
Use empty strings for anything the image does not show.`

// Option configures a visionService.
type Option func(*visionService)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *visionService) {
		s.client = c
	}
}

// visionService implements vision.Service against an OpenAI-compatible
// chat completions endpoint.
type visionService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewVisionService constructs a vision.Service. An empty apiKey yields a
// service whose calls fail with vision.ErrNotConfigured.
func NewVisionService(apiKey, baseURL, model string, opts ...Option) visionpkg.Service {
	s := &visionService{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// chatRequest is the chat completions request body. Content parts carry the
// prompt and the image as a data URL.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []chatMsg `json:"messages"`
}

type chatMsg struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *visionService) ParseReport(ctx context.Context, req visionpkg.ParseRequest) (*visionpkg.Report, error) {
	if s.apiKey == "" {
		return nil, visionpkg.ErrNotConfigured
	}
	mime := req.MimeType
	if mime == "" {
		mime = "image/jpeg"
	}

	body := chatRequest{
		Model: s.model,
		Messages: []chatMsg{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: extractionPrompt},
				{Type: "image_url", ImageURL: &imageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", mime, req.ImageBase64),
				}},
			},
		}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("vision API returned status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("vision API error: %s", parsed.Error.Message)
		}
		return nil, fmt.Errorf("vision API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("vision API returned no choices")
	}

	report := &visionpkg.Report{}
	content := stripFences(parsed.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), report); err != nil {
		return nil, fmt.Errorf("vision API reply is not the expected JSON: %w", err)
	}
	return report, nil
}

// stripFences removes a surrounding markdown code fence if the model added
// one despite the prompt.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
