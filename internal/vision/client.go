package vision

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/game"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

const describePrompt = "What's in this image? Describe it in one word if possible. " +
	"Do not include context or color, just describe the dominant subject in one word."

// Client asks a chat-completions style vision endpoint for a short
// description of a finished game's canvas. Everything about it is
// best-effort: it runs only after the session is gone, every failure is
// logged and discarded, and a result is delivered to whoever still happens
// to be subscribed to the old room id.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
	sink       game.Broadcaster
}

func NewClient(apiURL, apiKey, model string, sink game.Broadcaster) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Minute},
		sink:       sink,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// DescribeAsync fires off the description in the background and returns
// immediately.
func (c *Client) DescribeAsync(path, roomID string) {
	if !c.Enabled() {
		logger.Debugf("image description disabled, skipping %s", path)
		return
	}
	go func() {
		description, err := c.describe(path)
		if err != nil {
			logger.Warningf("image description for %s failed: %v", path, err)
			return
		}
		logger.Infof("canvas %s described as %q", path, description)
		if c.sink != nil && roomID != "" {
			c.sink.Deliver(game.ToRoom(roomID, game.EventCanvasDescription, description))
		}
	}()
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
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
}

func (c *Client) describe(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: describePrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			},
		}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vision api returned %s", resp.Status)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("vision api returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
