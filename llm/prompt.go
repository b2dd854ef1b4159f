package llm

import (
	"github.com/tmc/langchaingo/llms"

	"github.com/zarkopopovski/study-bot/models"
)

// HistoryWindow is how many stored turns (3 question/answer pairs) are
// replayed to the model on each chat request.
const HistoryWindow = 6

const SystemPrompt = `You are a strict Academic Study Assistant.

Rules:
- Only answer academic questions.
- If question is not study-related, respond:
  "I am designed for academic learning support only."

Teaching Method:
1. Define the concept briefly.
2. Explain clearly in simple terms.
3. Show step-by-step reasoning when solving problems.
4. Provide an example if useful.
5. Encourage understanding.

Tone:
Professional, structured, clear.
No emojis.
No casual conversation.`

// BuildPrompt assembles the message sequence for one completion call: the
// system prompt, the history window in chronological order, then the new
// question as the final human turn. history is expected newest first, the
// way the store returns it.
func BuildPrompt(history []models.Message, question string) []llms.MessageContent {
	if len(history) > HistoryWindow {
		history = history[:HistoryWindow]
	}

	content := make([]llms.MessageContent, 0, len(history)+2)

	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt))

	for i := len(history) - 1; i >= 0; i-- {
		message := history[i]

		if message.Role == models.RoleUser {
			content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, message.Content))
		} else if message.Role == models.RoleAssistant {
			content = append(content, llms.TextParts(llms.ChatMessageTypeAI, message.Content))
		}
	}

	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, question))

	return content
}
