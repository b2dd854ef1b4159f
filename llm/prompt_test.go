package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/zarkopopovski/study-bot/models"
)

func textOf(t *testing.T, content llms.MessageContent) string {
	t.Helper()

	require.Len(t, content.Parts, 1)

	part, ok := content.Parts[0].(llms.TextContent)
	require.True(t, ok)

	return part.Text
}

func TestBuildPromptEmptyHistory(t *testing.T) {
	content := BuildPrompt(nil, "What is photosynthesis?")

	require.Len(t, content, 2)

	assert.Equal(t, llms.ChatMessageTypeSystem, content[0].Role)
	assert.Equal(t, SystemPrompt, textOf(t, content[0]))

	assert.Equal(t, llms.ChatMessageTypeHuman, content[1].Role)
	assert.Equal(t, "What is photosynthesis?", textOf(t, content[1]))
}

func TestBuildPromptReordersHistory(t *testing.T) {
	// newest first, the way the store returns it
	history := []models.Message{
		{Role: models.RoleAssistant, Content: "second answer"},
		{Role: models.RoleUser, Content: "second question"},
		{Role: models.RoleAssistant, Content: "first answer"},
		{Role: models.RoleUser, Content: "first question"},
	}

	content := BuildPrompt(history, "third question")

	require.Len(t, content, 6)

	assert.Equal(t, llms.ChatMessageTypeSystem, content[0].Role)

	assert.Equal(t, llms.ChatMessageTypeHuman, content[1].Role)
	assert.Equal(t, "first question", textOf(t, content[1]))
	assert.Equal(t, llms.ChatMessageTypeAI, content[2].Role)
	assert.Equal(t, "first answer", textOf(t, content[2]))
	assert.Equal(t, llms.ChatMessageTypeHuman, content[3].Role)
	assert.Equal(t, "second question", textOf(t, content[3]))
	assert.Equal(t, llms.ChatMessageTypeAI, content[4].Role)
	assert.Equal(t, "second answer", textOf(t, content[4]))

	assert.Equal(t, llms.ChatMessageTypeHuman, content[5].Role)
	assert.Equal(t, "third question", textOf(t, content[5]))
}

func TestBuildPromptCapsHistoryWindow(t *testing.T) {
	history := make([]models.Message, 0, 10)
	for i := 10; i > 0; i-- {
		role := models.RoleUser
		if i%2 == 0 {
			role = models.RoleAssistant
		}
		history = append(history, models.Message{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}

	content := BuildPrompt(history, "new question")

	// system + 6 most recent turns + question
	require.Len(t, content, HistoryWindow+2)

	// oldest turn inside the window comes right after the system prompt
	assert.Equal(t, "turn 5", textOf(t, content[1]))
	// newest stored turn sits just before the question
	assert.Equal(t, "turn 10", textOf(t, content[HistoryWindow]))
}

func TestBuildPromptSkipsUnknownRoles(t *testing.T) {
	history := []models.Message{
		{Role: "system", Content: "should not leak"},
		{Role: models.RoleUser, Content: "kept"},
	}

	content := BuildPrompt(history, "q")

	require.Len(t, content, 3)
	assert.Equal(t, "kept", textOf(t, content[1]))
}
