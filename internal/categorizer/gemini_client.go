package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mweber/konto-csv/internal/logging"
)

// GeminiClient implements the AIClient interface against the Google Gemini
// API. It is only constructed when AI categorization is enabled in the
// configuration.
type GeminiClient struct {
	model  *genai.GenerativeModel
	client *genai.Client
	logger logging.Logger
}

// NewGeminiClient creates a GeminiClient for the given API key and model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		model:  client.GenerativeModel(modelName),
		client: client,
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Categorize asks Gemini to assign the description to one of the given
// category names and parses the "Category:" line out of the response.
func (c *GeminiClient) Categorize(ctx context.Context, description string, categories []string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following bank transaction description:
%s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		description,
		strings.Join(categories, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini api")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	name := extractCategoryFromResponse(responseText)
	if name == "" {
		return "", fmt.Errorf("no category in gemini response: %q", responseText)
	}

	c.logger.WithFields(
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "category", Value: name},
	).Debug("Gemini classified description")

	return name, nil
}

// extractCategoryFromResponse parses the response for the "Category:" line.
func extractCategoryFromResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			return strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "Category:")), "[]")
		}
	}
	return ""
}
