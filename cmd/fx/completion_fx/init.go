package completion_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"pathwise/pkg/utils"
)

var Module = fx.Provide(provideCompletionClient)

// provideCompletionClient wires the chat-completion backend from the
// environment. COMPLETION_PROVIDER selects groq or gemini; groq is the
// default since every generator prompt is tuned against it.
func provideCompletionClient() utils.CompletionClientInterface {
	provider := os.Getenv("COMPLETION_PROVIDER")
	if provider == "" {
		provider = "groq"
	}

	var apiKey, model string
	switch provider {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		apiKey = os.Getenv("GROQ_API_KEY")
		model = os.Getenv("GROQ_MODEL")
	}

	client, err := utils.NewCompletionClient(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to initialize completion client: %v", err)
	}
	return client
}
