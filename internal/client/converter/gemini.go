package converter

import (
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// CandidateText concatenates the text parts of the first candidate.
func CandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}

	return b.String()
}

// Blocked reports whether the first candidate was stopped by the safety filter.
func Blocked(resp *genai.GenerateContentResponse) bool {
	if resp == nil {
		return false
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return true
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return false
	}
	return resp.Candidates[0].FinishReason == genai.FinishReasonSafety
}
