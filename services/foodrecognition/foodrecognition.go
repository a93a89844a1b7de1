package foodrecognition

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	gogpt "github.com/sashabaranov/go-openai"

	"healthbot/utils"
)

// UnknownFoodName is the fallback dish name when the model returns none.
const UnknownFoodName = "Неизвестное блюдо"

// recognitionPrompt keeps the reply machine-readable: JSON only, no prose.
const recognitionPrompt = `Определи КБЖУ блюда. Ответ только JSON:
{"food_name":"название","ingredients":[{"name":"ингредиент","calories":число,"protein":число,"fats":число,"carbs":число}],"total_calories":число,"total_protein":число,"total_fats":число,"total_carbs":число}`

// Ingredient is a single recognized ingredient with its nutrition values.
type Ingredient struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	Amount   string  `json:"amount,omitempty"`
}

// FoodAnalysis is the recognized dish with total nutrition values.
type FoodAnalysis struct {
	FoodName      string       `json:"food_name"`
	Ingredients   []Ingredient `json:"ingredients"`
	TotalCalories float64      `json:"total_calories"`
	TotalProtein  float64      `json:"total_protein"`
	TotalFats     float64      `json:"total_fats"`
	TotalCarbs    float64      `json:"total_carbs"`
	Description   string       `json:"description,omitempty"`
}

// completionClient is the piece of the OpenAI wrapper this service needs.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req gogpt.ChatCompletionRequest) (gogpt.ChatCompletionResponse, error)
}

// Service recognizes food photos via the vision chat API.
type Service struct {
	client completionClient
	model  string
}

// NewService creates the food recognition service.
func NewService(client completionClient, model string) *Service {
	return &Service{client: client, model: model}
}

// Analyze recognizes the dish on a photo and estimates its nutrition.
// The image is sent base64-encoded as a data URL.
func (s *Service) Analyze(ctx context.Context, imageBytes []byte) (*FoodAnalysis, error) {
	if len(imageBytes) == 0 {
		return nil, errors.New("foodrecognition: empty image")
	}

	encoded := base64.StdEncoding.EncodeToString(imageBytes)

	resp, err := s.client.CreateChatCompletion(ctx, gogpt.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   300,
		Temperature: 0.2,
		Messages: []gogpt.ChatCompletionMessage{
			{
				Role: gogpt.ChatMessageRoleUser,
				MultiContent: []gogpt.ChatMessagePart{
					{
						Type: gogpt.ChatMessagePartTypeText,
						Text: recognitionPrompt,
					},
					{
						Type: gogpt.ChatMessagePartTypeImageURL,
						ImageURL: &gogpt.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + encoded,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("foodrecognition: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("foodrecognition: empty response")
	}

	return parseResponse(resp.Choices[0].Message.Content), nil
}

// parseResponse extracts a FoodAnalysis from the model reply, falling back
// to regex extraction when the reply is not valid JSON.
func parseResponse(content string) *FoodAnalysis {
	cleaned := stripCodeFence(content)

	var analysis FoodAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		utils.Warnf("foodrecognition: JSON parse failed, using fallback: %.100s", cleaned)
		analysis = parseFromText(content)
	}

	return normalize(&analysis)
}

// stripCodeFence removes a surrounding ```json ... ``` fence.
func stripCodeFence(content string) string {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

var (
	foodNameRe = regexp.MustCompile(`"food_name":\s*"([^"]+)"`)
	totalsRe   = map[string]*regexp.Regexp{
		"total_calories": regexp.MustCompile(`"total_calories":\s*(\d+\.?\d*)`),
		"total_protein":  regexp.MustCompile(`"total_protein":\s*(\d+\.?\d*)`),
		"total_fats":     regexp.MustCompile(`"total_fats":\s*(\d+\.?\d*)`),
		"total_carbs":    regexp.MustCompile(`"total_carbs":\s*(\d+\.?\d*)`),
	}
	legacyRe = map[string]*regexp.Regexp{
		"total_calories": regexp.MustCompile(`"calories":\s*(\d+\.?\d*)`),
		"total_protein":  regexp.MustCompile(`"protein":\s*(\d+\.?\d*)`),
		"total_fats":     regexp.MustCompile(`"fats":\s*(\d+\.?\d*)`),
		"total_carbs":    regexp.MustCompile(`"carbs":\s*(\d+\.?\d*)`),
	}
)

// parseFromText pulls the totals out of a free-form reply.
func parseFromText(text string) FoodAnalysis {
	analysis := FoodAnalysis{FoodName: UnknownFoodName}

	if m := foodNameRe.FindStringSubmatch(text); m != nil {
		analysis.FoodName = m[1]
	}

	extract := func(res map[string]*regexp.Regexp) map[string]float64 {
		values := make(map[string]float64, len(res))
		for key, re := range res {
			if m := re.FindStringSubmatch(text); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					values[key] = v
				}
			}
		}
		return values
	}

	values := extract(totalsRe)
	if values["total_calories"] == 0 {
		// Older replies used bare "calories"/"protein"/... keys.
		values = extract(legacyRe)
	}

	analysis.TotalCalories = values["total_calories"]
	analysis.TotalProtein = values["total_protein"]
	analysis.TotalFats = values["total_fats"]
	analysis.TotalCarbs = values["total_carbs"]

	return analysis
}

// normalize clamps negatives, drops nameless ingredients, sums totals from
// ingredients when the model omitted them and fills the fallback name.
func normalize(analysis *FoodAnalysis) *FoodAnalysis {
	ingredients := analysis.Ingredients[:0]
	for _, ing := range analysis.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if ing.Name == "" {
			continue
		}
		ing.Calories = clampNonNegative(ing.Calories)
		ing.Protein = clampNonNegative(ing.Protein)
		ing.Fats = clampNonNegative(ing.Fats)
		ing.Carbs = clampNonNegative(ing.Carbs)
		ingredients = append(ingredients, ing)
	}
	analysis.Ingredients = ingredients

	if analysis.TotalCalories == 0 && len(ingredients) > 0 {
		for _, ing := range ingredients {
			analysis.TotalCalories += ing.Calories
			analysis.TotalProtein += ing.Protein
			analysis.TotalFats += ing.Fats
			analysis.TotalCarbs += ing.Carbs
		}
	}

	analysis.TotalCalories = clampNonNegative(analysis.TotalCalories)
	analysis.TotalProtein = clampNonNegative(analysis.TotalProtein)
	analysis.TotalFats = clampNonNegative(analysis.TotalFats)
	analysis.TotalCarbs = clampNonNegative(analysis.TotalCarbs)

	analysis.FoodName = strings.TrimSpace(analysis.FoodName)
	if analysis.FoodName == "" {
		analysis.FoodName = UnknownFoodName
	}
	analysis.Description = strings.TrimSpace(analysis.Description)

	return analysis
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
