package assistant

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	aiutils "github.com/rachitshetty07/Attendance-RCN/ai/utils"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

type placeOutput struct {
	Place string `json:"place" jsonschema:"description=Short place name."`
}

// GenkitGenerator talks to Gemini through genkit's Google AI plugin.
type GenkitGenerator struct {
	g     *genkit.Genkit
	model string
}

func NewGenkitGenerator(ctx context.Context, apiKey, model string) *GenkitGenerator {
	if model == "" {
		model = DefaultModel
	}
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}),
		genkit.WithDefaultModel("googleai/"+model),
	)
	return &GenkitGenerator{g: g, model: model}
}

func (k *GenkitGenerator) GeneratePlace(ctx context.Context, prompt string) (string, error) {
	out, res, err := genkit.GenerateData[placeOutput](ctx, k.g,
		ai.WithPrompt("%s", prompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate place name: %w", err)
	}
	aiutils.LogUsage(res, "place-name")
	if out == nil {
		return "", nil
	}
	return out.Place, nil
}

func (k *GenkitGenerator) GenerateAnswer(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	model := googlegenai.GoogleAIModelRef(k.model, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	})

	res, err := genkit.Generate(ctx, k.g,
		ai.WithSystem("%s", system),
		ai.WithPrompt("%s", prompt),
		ai.WithModel(model),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}
	aiutils.LogUsage(res, "ask")
	return res.Text(), nil
}
