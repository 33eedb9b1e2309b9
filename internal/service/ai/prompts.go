package ai

import (
	"fmt"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
)

// summaryTarget holds the size wording and completion cap for one length.
type summaryTarget struct {
	Wording   string
	MaxTokens int
}

var summaryTargets = map[task.Length]summaryTarget{
	task.LengthShort:  {Wording: "one or two sentences", MaxTokens: 160},
	task.LengthMedium: {Wording: "a single compact paragraph", MaxTokens: 320},
	task.LengthLong:   {Wording: "a detailed summary of several paragraphs", MaxTokens: 640},
}

// Each method carries its own instruction block. Abstractive asks for new
// phrasing; extractive restricts the model to sentences from the source.
var methodInstructions = map[task.Method]string{
	task.MethodAbstractive: "Write the summary in your own words. Rephrase freely and do not copy sentences from the source.",
	task.MethodExtractive:  "Build the summary only from sentences that appear verbatim in the source, in their original order. Do not invent new sentences.",
}

const summarySystemTemplate = `You are a precise summarization engine.
Summarize the user's text into %s.
%s
Respond with the summary only. No preamble, no headings, no commentary.`

const paraphraseSystemPrompt = `You are a precise paraphrasing engine.
Rewrite the user's text in fresh wording while preserving its full meaning, tone, and level of detail.
Keep roughly the original length. Respond with the rewritten text only. No preamble, no commentary.`

// summarySystemPrompt renders the system message for one method and length.
func summarySystemPrompt(method task.Method, length task.Length) (string, error) {
	target, ok := summaryTargets[length]
	if !ok {
		return "", fmt.Errorf("unknown length %q", length)
	}

	instruction, ok := methodInstructions[method]
	if !ok {
		return "", fmt.Errorf("unknown method %q", method)
	}

	return fmt.Sprintf(summarySystemTemplate, target.Wording, instruction), nil
}
