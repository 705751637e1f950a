package vendors

import (
	"context"
	"errors"
	"sync"

	"github.com/foodpilot-ai/food-pilot/config"
	"github.com/foodpilot-ai/food-pilot/log"
	"github.com/foodpilot-ai/food-pilot/models"
	"github.com/foodpilot-ai/food-pilot/utils"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var (
	openaiClient     *OpenAIClient
	openaiClientOnce sync.Once
)

var openaiLogger = log.GetLogger("OpenAI")

// OpenAIClient wraps the OpenAI-compatible chat-completions client used for
// nutrition analysis.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// GetOpenAIClient returns the singleton client, or nil when no API key is
// configured.
func GetOpenAIClient() *OpenAIClient {
	openaiClientOnce.Do(func() {
		cfg := config.Get()

		if cfg.OpenAIAPIKey == "" {
			openaiLogger.Warn().Msg("OPENAI_API_KEY not configured, analysis disabled")
			return
		}

		clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
		if cfg.OpenAIBaseURL != "" && cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
			clientConfig.BaseURL = cfg.OpenAIBaseURL
		}

		openaiClient = &OpenAIClient{
			client: openai.NewClientWithConfig(clientConfig),
			model:  cfg.OpenAIModel,
		}

		openaiLogger.Info().Str("model", cfg.OpenAIModel).Str("baseURL", cfg.OpenAIBaseURL).Msg("analysis client initialized")
	})

	return openaiClient
}

// analysisSchema is the structured-output schema every analysis request
// carries. All fields are required; items is the ordered ingredient
// breakdown.
func analysisSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"title":       {Type: jsonschema.String},
			"description": {Type: jsonschema.String},
			"confidence":  {Type: jsonschema.String, Description: "例如：高准确度"},
			"items": {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"name":    {Type: jsonschema.String},
						"portion": {Type: jsonschema.String},
						"energy":  {Type: jsonschema.String},
					},
					Required:             []string{"name", "portion", "energy"},
					AdditionalProperties: false,
				},
			},
			"totalCalories": {Type: jsonschema.String},
			"suggestion":    {Type: jsonschema.String, Description: "友好的后续建议或问题"},
		},
		Required:             []string{"title", "description", "confidence", "items", "totalCalories", "suggestion"},
		AdditionalProperties: false,
	}
}

// Analyze sends the meal description to the model with the fixed persona and
// schema, and parses the structured reply. Any transport or parse failure is
// an error; callers decide how to degrade. No retry and no client-side
// timeout beyond the transport's defaults.
func (o *OpenAIClient) Analyze(ctx context.Context, query string) (*models.NutritionResult, error) {
	if o == nil {
		return nil, errors.New("analysis client not configured")
	}

	schema := analysisSchema()
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Temperature: 0.4,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "nutrition_analysis",
				Schema: &schema,
				Strict: true,
			},
		},
	}

	openaiLogger.Debug().
		Str("model", o.model).
		Str("query", query).
		Msg("analysis request")

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("analysis response has no choices")
	}

	content := resp.Choices[0].Message.Content

	openaiLogger.Debug().
		Str("finishReason", string(resp.Choices[0].FinishReason)).
		Int("totalTokens", resp.Usage.TotalTokens).
		Msg("analysis response")

	var result models.NutritionResult
	if err := utils.ParseJSONFromModelReply(content, &result); err != nil {
		return nil, err
	}
	if err := validateResult(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// validateResult rejects structurally valid JSON that is missing the fields
// the schema marks required; partial data is treated as a failure.
func validateResult(r *models.NutritionResult) error {
	if r.Title == "" || r.Description == "" || r.TotalCalories == "" {
		return errors.New("analysis result missing required fields")
	}
	if len(r.Items) == 0 {
		return errors.New("analysis result has no ingredient items")
	}
	return nil
}
