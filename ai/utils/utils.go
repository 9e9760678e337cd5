package utils

import (
	"github.com/firebase/genkit/go/ai"
	"github.com/sirupsen/logrus"
)

// LogUsage records token usage for one model call at debug level.
func LogUsage(res *ai.ModelResponse, purpose string) {
	if res == nil || res.Usage == nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"component":      "ai",
		"purpose":        purpose,
		"inputTokens":    res.Usage.InputTokens,
		"thoughtsTokens": res.Usage.ThoughtsTokens,
		"outputTokens":   res.Usage.OutputTokens,
		"totalTokens":    res.Usage.TotalTokens,
	}).Debug("model usage")
}
