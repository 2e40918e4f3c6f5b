package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client wraps the optional LLM provider. Without an API key every call
// degrades to a static local answer so the routes keep working.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

const chatEndpoint = "https://api.openai.com/v1/chat/completions"

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var cannedRecommendations = []string{
	"Software Engineer Intern at Google",
	"Data Analyst Intern at Microsoft",
	"Full Stack Developer Intern at Infosys",
	"AI/ML Intern at TCS",
	"Cybersecurity Analyst Intern at Wipro",
}

func (c *Client) Recommendations(ctx context.Context) ([]string, error) {
	if c.apiKey == "" {
		return cannedRecommendations, nil
	}
	content, err := c.chat(ctx, "Suggest 5 internship or placement opportunities for CS students", "")
	if err != nil {
		return nil, err
	}
	var items []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items, nil
}

func (c *Client) KeyPhrases(ctx context.Context, text string) ([]string, error) {
	if c.apiKey == "" {
		return localKeyPhrases(text), nil
	}
	content, err := c.chat(ctx, "Extract the key phrases from the user's text. Reply with a comma-separated list only.", text)
	if err != nil {
		return nil, err
	}
	var phrases []string
	for _, part := range strings.Split(content, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	return phrases, nil
}

func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	if c.apiKey == "" {
		return "No answer found.", nil
	}
	return c.chat(ctx, "You answer questions about a university placement cell. Be brief.", question)
}

func (c *Client) chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := []chatMessage{{Role: "system", Content: systemPrompt}}
	if userPrompt != "" {
		messages = append(messages, chatMessage{Role: "user", Content: userPrompt})
	}
	body, err := json.Marshal(chatRequest{Model: "gpt-4o-mini", Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat provider: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("chat provider HTTP %d", resp.StatusCode)
	}
	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty chat response")
	}
	return parsed.Choices[0].Message.Content, nil
}

func localKeyPhrases(text string) []string {
	seen := map[string]bool{}
	var phrases []string
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}) {
		lower := strings.ToLower(word)
		if len(lower) < 5 || seen[lower] {
			continue
		}
		seen[lower] = true
		phrases = append(phrases, lower)
		if len(phrases) == 10 {
			break
		}
	}
	return phrases
}
