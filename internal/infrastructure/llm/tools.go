package llm

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// CostToolName identifies the pricing lookup exposed to the model during
// reverse budget engineering.
const CostToolName = "get_real_world_cost"

// CostTool declares the pricing lookup as a callable function. The model must
// invoke it to obtain real-world costs instead of inventing numbers.
func CostTool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        CostToolName,
			Description: "Finds the estimated real-world cost for a specific item or service based on a search query and location, in INR.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"item_query": {
						Type:        jsonschema.String,
						Description: "The item or service to find the cost for.",
					},
					"location": {
						Type:        jsonschema.String,
						Description: "The location for the cost estimate.",
					},
				},
				Required: []string{"item_query"},
			},
		},
	}
}
