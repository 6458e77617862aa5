package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	input := `{"executiveSummary": "ok"}`

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"score\": 72}\n```"

	assert.Equal(t, `{"score": 72}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"score\": 72}\n```"

	assert.Equal(t, `{"score": 72}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageTag(t *testing.T) {
	input := "```javascript\n{\"score\": 72}\n```"

	assert.Equal(t, `{"score": 72}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_BraceOnFenceLine(t *testing.T) {
	// The opening brace directly after the fence must not be treated as a
	// language tag
	input := "```{\"score\": 72}\n```"

	assert.Equal(t, `{"score": 72}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "  \n```json\n{\"a\": 1}\n```  \n"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_MultilinePayload(t *testing.T) {
	input := "```json\n{\n  \"modifications\": [\n    {\"section\": \"Skills\"}\n  ]\n}\n```"

	cleaned := CleanJSONBlock(input)
	assert.Contains(t, cleaned, `"modifications"`)
	assert.Equal(t, byte('{'), cleaned[0])
	assert.Equal(t, byte('}'), cleaned[len(cleaned)-1])
}

func TestCleanJSONBlock_Empty(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock(""))
	assert.Equal(t, "", CleanJSONBlock("   "))
}

func TestCleanJSONBlock_NotJSONPassesThrough(t *testing.T) {
	input := "I could not produce a response."

	assert.Equal(t, input, CleanJSONBlock(input))
}
