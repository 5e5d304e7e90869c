package suggest_search_usecase

// DefaultToolVocabulary is the static list of well-known tool names matched
// before the category and pricing vocabularies.
var DefaultToolVocabulary = []string{
	"ChatGPT",
	"Claude",
	"Gemini",
	"Midjourney",
	"DALL-E",
	"Stable Diffusion",
	"GitHub Copilot",
	"Perplexity",
	"Jasper",
	"Copy.ai",
	"Notion AI",
	"Runway",
	"ElevenLabs",
	"Synthesia",
	"Grammarly",
}
