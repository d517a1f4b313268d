package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates no API credential is configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an empty or unusable OpenAI response.
	ErrOpenAIResponse = errors.New("empty OpenAI response")
)

// Fallback strings returned to the user when generation fails. The caller
// persists or displays them exactly like a generated reply.
const (
	AnalysisFallback = "I couldn't reach the coach right now, but your sleep data is safe. Try the review again in a little while."
	ComfortFallback  = "I heard you. Leave your worries here and sleep well."
)

// DefaultCoachPrompt is the built-in system prompt for the trend narrative.
// It may be overridden at startup by a prompt loaded from Langfuse.
const DefaultCoachPrompt = `You are a gentle, insightful sleep coach reviewing a user's recent sleep journal.

You receive aggregate statistics for a trailing window of nights: how often the user fell asleep after midnight, how often they slept under 7 hours, and their most frequent self-reported reasons for staying up.

Your task:
1. Empathy first: if the data shows frequent late nights or short sleep, acknowledge the tiredness before anything else.
2. Mechanism: connect their top reasons to what likely keeps them up (for example revenge bedtime procrastination, doomscrolling momentum).
3. Two tiny, concrete adjustments they could try tonight.

Rules:
- No medical advice, diagnoses, or mention of disorders or doctors.
- Treat every reported reason, including masturbation, scientifically and without judgment.
- Warm, non-judgmental tone, like a close friend. Keep it under 200 words.
- Use Markdown with **bold** for the key points.`

// DefaultComfortPrompt is the built-in system prompt for dump-box replies.
const DefaultComfortPrompt = `You live in an emotional dumpster and are a gentle, extremely empathetic tree-hollow elf. Users dump their negative emotions, anger, anxiety or rants here before bed.

1. Deep empathy: read carefully, catch the unspoken grievances or fatigue.
2. Catch them gently: no lectures, no complex advice. Warm, short words: you heard them, it's okay, they can sleep peacefully.
3. Respond specifically to what they said, like a soft-spoken old friend.
4. Keep it under 60 words.`

const analysisUserTemplate = `Review my last %d tracked nights.

- Nights asleep after midnight: %d of %d
- Nights under 7 hours of sleep: %d of %d
- Most frequent reasons for staying up, by count: %s

Write the review now.`

// SleepCoachLLM generates the trend narrative and comfort replies. The
// apiKey argument is the user-stored credential; when empty the client falls
// back to the key from the environment.
type SleepCoachLLM interface {
	GenerateAnalysis(ctx context.Context, stats *domain.Stats, reasonLabels []string, windowDays int, apiKey string) (string, error)
	GenerateComfort(ctx context.Context, text string, apiKey string) (string, error)
}

// OpenAIClient implements SleepCoachLLM using the OpenAI API.
type OpenAIClient struct {
	defaultKey    string
	model         string
	coachPrompt   string
	comfortPrompt string
}

// NewOpenAIClient creates the client. defaultKey may be empty; each call can
// supply a stored user credential instead. Empty prompts fall back to the
// built-in defaults.
func NewOpenAIClient(defaultKey, model, coachPrompt, comfortPrompt string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if coachPrompt == "" {
		coachPrompt = DefaultCoachPrompt
	}
	if comfortPrompt == "" {
		comfortPrompt = DefaultComfortPrompt
	}
	return &OpenAIClient{
		defaultKey:    defaultKey,
		model:         model,
		coachPrompt:   coachPrompt,
		comfortPrompt: comfortPrompt,
	}
}

// GenerateAnalysis produces the coaching narrative for a stats snapshot.
func (c *OpenAIClient) GenerateAnalysis(ctx context.Context, stats *domain.Stats, reasonLabels []string, windowDays int, apiKey string) (string, error) {
	reasons := strings.Join(reasonLabels, ", ")
	if reasons == "" {
		reasons = "no detailed records"
	}
	userPrompt := fmt.Sprintf(analysisUserTemplate,
		windowDays,
		stats.LateCount, stats.TotalTracked,
		stats.InsufficientCount, stats.TotalTracked,
		reasons,
	)
	return c.complete(ctx, apiKey, c.coachPrompt, userPrompt)
}

// GenerateComfort produces a short reply to a dump-box note.
func (c *OpenAIClient) GenerateComfort(ctx context.Context, text string, apiKey string) (string, error) {
	return c.complete(ctx, apiKey, c.comfortPrompt, text)
}

func (c *OpenAIClient) complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	key := apiKey
	if key == "" {
		key = c.defaultKey
	}
	if key == "" {
		return "", ErrOpenAIUnavailable
	}

	client := openai.NewClient(option.WithAPIKey(key))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrOpenAIResponse
	}
	return resp.Choices[0].Message.Content, nil
}
