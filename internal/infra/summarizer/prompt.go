package summarizer

import "fmt"

const (
	// SystemPrompt is sent as the system turn of every conversation.
	SystemPrompt = "You are a helpful assistant."

	// WordLimit is the summary length requested from the model. It is a soft
	// limit: longer summaries are counted and logged, never rejected.
	WordLimit = 50
)

// BuildPrompt returns the user turn asking for a summary of text.
//
//	"Provide a concise summary less than 50 words of the following text: {text}"
func BuildPrompt(text string) string {
	return fmt.Sprintf("Provide a concise summary less than %d words of the following text: %s", WordLimit, text)
}
