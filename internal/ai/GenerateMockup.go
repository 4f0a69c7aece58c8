package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"voicesketch/internal/ai/prompts"
	aiutils "voicesketch/internal/ai/utils"
	"voicesketch/internal/metrics"
	"voicesketch/internal/mockup"
)

var (
	errEmptyResponse = errors.New("model returned an empty response")
	errNoCandidates  = errors.New("no model candidates configured")
)

const connectionHint = "Check the API key permissions and the MODEL_CANDIDATES setting."

// attempt is the outcome of one call on the fallback ladder: text is set on
// success, err on failure.
type attempt struct {
	model string
	text  string
	err   error
}

// Generate walks the model ladder and wraps the first successful component
// in the document shell. It never returns an error; failures are rendered
// as error documents labelled mockup.ErrorLabel.
func (g *Generator) Generate(ctx context.Context, userPrompt, apiKey string) (string, string) {
	start := time.Now()
	doc, label := g.generate(ctx, userPrompt, apiKey)

	outcome := metrics.OutcomeSuccess
	if label == mockup.ErrorLabel {
		outcome = metrics.OutcomeError
	}
	metrics.ObserveGeneration(metrics.ModeRemote, outcome, time.Since(start))
	return doc, label
}

func (g *Generator) generate(ctx context.Context, userPrompt, apiKey string) (string, string) {
	if strings.TrimSpace(apiKey) == "" {
		g.log.Warn("remote generation requested without an API key")
		return mockup.ErrorDocument("Missing API Key", "Please provide your Gemini API key.", ""), mockup.ErrorLabel
	}

	client, err := g.newClient(apiKey)
	if err != nil {
		g.log.Error("failed to create model client", zap.Error(err))
		return mockup.ErrorDocument("System Error", "Critical failure: "+err.Error(), ""), mockup.ErrorLabel
	}

	instruction := prompts.GetComponentPrompt(userPrompt)

	last := attempt{err: errNoCandidates}
	for _, model := range g.models {
		last = g.try(ctx, client, model, instruction)
		metrics.ObserveAttempt(model, last.err)
		if last.err == nil {
			break
		}
		g.log.Warn("model candidate failed", zap.String("model", model), zap.Error(last.err))
	}

	if last.err != nil {
		available := ListAvailableModels(ctx, client)
		g.log.Error("all model candidates failed",
			zap.Strings("candidates", g.models),
			zap.Strings("available", available),
			zap.Error(last.err),
		)
		return mockup.ErrorDocument("Model Connection Failed", connectionFailureMessage(last.err, available), connectionHint), mockup.ErrorLabel
	}

	g.log.Info("generated remote mockup", zap.String("model", last.model), zap.Int("bytes", len(last.text)))
	code := aiutils.StripCodeFences(last.text)
	return mockup.Wrap(code), fmt.Sprintf("GenAI (%s)", last.model)
}

func (g *Generator) try(ctx context.Context, client ChatClient, model, instruction string) attempt {
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
	})
	if err != nil {
		return attempt{model: model, err: err}
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return attempt{model: model, err: errEmptyResponse}
	}
	return attempt{model: model, text: resp.Choices[0].Message.Content}
}

func connectionFailureMessage(lastErr error, available []string) string {
	var b strings.Builder
	b.WriteString("Failed to connect to AI models.\nLast Error: ")
	b.WriteString(lastErr.Error())
	if len(available) > 0 {
		b.WriteString("\n\nAVAILABLE MODELS FOUND: ")
		b.WriteString(strings.Join(available, ", "))
		b.WriteString("\n(The candidates were tried but failed. Check your API key permissions.)")
	} else {
		b.WriteString("\n\nNO MODELS FOUND. Your API key might be invalid, or the endpoint is misconfigured.")
	}
	return b.String()
}
