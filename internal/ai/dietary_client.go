package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DietaryClient asks Gemini for dietary tags matching a listing's title and
// description. The API key is read by the genai SDK from GEMINI_API_KEY.
type DietaryClient struct {
	model string
}

func NewDietaryClient(model string) *DietaryClient {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &DietaryClient{model: model}
}

const dietaryPrompt = `You label surplus food listings with dietary tags.
Given a title and description, answer with a comma-separated list drawn only
from this vocabulary: vegan, vegetarian, halal, kosher, gluten_free,
dairy_free, nut_free, contains_nuts, contains_pork, spicy.
Answer "none" if nothing applies. Output the list only, no other text.`

func (c *DietaryClient) Suggest(ctx context.Context, title, description string) ([]string, error) {
	start := time.Now()
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("[dietary] stage=client_init err=%v", err)
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(dietaryPrompt),
		genai.NewPartFromText(fmt.Sprintf("Title: %s\nDescription: %s", title, description)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	res, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		log.Printf("[dietary] stage=gemini_fail model=%s err=%v", c.model, err)
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	rawText := res.Text()
	tags, err := ParseDietaryTags(rawText)
	if err != nil {
		text := strings.ReplaceAll(rawText, "\n", " ")
		if len(text) > 80 {
			text = text[:80]
		}
		log.Printf("[dietary] stage=parse_fail text=%q err=%v", text, err)
		return nil, err
	}
	log.Printf("[dietary] stage=done model=%s tags=%d totalMs=%d", c.model, len(tags), time.Since(start).Milliseconds())
	return tags, nil
}
