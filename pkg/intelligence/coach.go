// Package intelligence runs the AI coaching operations: conversation
// analysis, role-play, course plans, voice parsing, keywords and reports.
package intelligence

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/ai/llm"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Operation names, used as metric labels and log fields
const (
	OpAnalyze       = "analyze"
	OpRolePlayTurn  = "roleplay_turn"
	OpRolePlayScore = "roleplay_score"
	OpCoursePlan    = "course_plan"
	OpParseSchedule = "parse_schedule"
	OpParseCustomer = "parse_customer"
	OpKeywords      = "keywords"
	OpReport        = "report"
	OpTranscribe    = "transcribe"
)

// upstreamMessage is what the client sees when a provider call fails
const upstreamMessage = "The AI service is temporarily unavailable, please try again"

// Coach runs AI operations against one LLM provider. Calls are never
// retried; failures surface as upstream errors the client may retry.
type Coach struct {
	llm         llm.LLMClient
	transcriber llm.Transcriber
	log         logger.Logger
	metrics     *metrics.Metrics
}

// NewCoach creates a coach. transcriber may be nil when the provider has
// no speech-to-text; audio payloads are then rejected.
func NewCoach(client llm.LLMClient, transcriber llm.Transcriber, log logger.Logger, m *metrics.Metrics) *Coach {
	if log == nil {
		log = logger.Default()
	}
	return &Coach{
		llm:         client,
		transcriber: transcriber,
		log:         log.With("component", "coach"),
		metrics:     m,
	}
}

// ResolveInput returns text as-is, or the transcript of the base64 audio
// clip when text is empty.
func (c *Coach) ResolveInput(ctx context.Context, text, audioBase64, format string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	if audioBase64 == "" {
		return "", domain.NewValidationError("input text or audio is required")
	}
	if c.transcriber == nil {
		return "", domain.NewValidationError(llm.ErrAudioUnsupported.Error())
	}

	audio, err := base64.StdEncoding.DecodeString(audioBase64)
	if err != nil {
		return "", domain.NewValidationError("audio_base64 is not valid base64")
	}

	start := time.Now()
	transcript, err := c.transcriber.Transcribe(ctx, audio, format)
	c.metrics.RecordAIRequest(OpTranscribe, err == nil, time.Since(start))
	if err != nil {
		return "", c.upstream(OpTranscribe, err)
	}
	if strings.TrimSpace(transcript) == "" {
		return "", domain.NewValidationError("no speech detected in audio")
	}
	return transcript, nil
}

// Analysis is the structured result of analyzing one conversation
type Analysis struct {
	CustomerProfile models.CustomerProfile     `json:"customer_profile"`
	Intelligence    models.Intelligence        `json:"intelligence"`
	Metrics         models.ConversationMetrics `json:"metrics"`
	Suggestions     []string                   `json:"suggestions"`
}

// AnalyzeInteraction extracts intelligence from a conversation. Ids from
// the model are discarded; every next step gets a fresh id so it can later
// be linked to a schedule.
func (c *Coach) AnalyzeInteraction(ctx context.Context, conversation, date string, customer *models.Customer, lang string) (*Analysis, error) {
	known := ""
	if customer != nil {
		known = describeCustomer(customer)
	}

	var out Analysis
	err := c.chatJSON(ctx, OpAnalyze, lang, llm.AnalystSystemPrompt,
		llm.AnalyzeInteractionPrompt(conversation, date, known), &out)
	if err != nil {
		return nil, err
	}

	out.Intelligence.Probability = clamp(out.Intelligence.Probability, 0, 100)
	out.Intelligence.NextSteps = AssignStepIDs(out.Intelligence.NextSteps, nil)
	if customer != nil && out.CustomerProfile.Name == "" {
		out.CustomerProfile.Name = customer.Name
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}

	c.metrics.RecordInteractionAnalyzed()
	return &out, nil
}

// AssignStepIDs cleans a next-step list and makes its ids unique. An
// incoming id survives only when it is in keep and not already used
// earlier in the list; every other step gets a new uuid. Unknown
// priorities are normalized to medium.
func AssignStepIDs(steps []models.NextStep, keep map[string]bool) []models.NextStep {
	out := make([]models.NextStep, 0, len(steps))
	used := make(map[string]bool, len(steps))
	for _, step := range steps {
		step.Action = strings.TrimSpace(step.Action)
		if step.Action == "" {
			continue
		}
		if step.ID == "" || !keep[step.ID] || used[step.ID] {
			step.ID = uuid.New().String()
		}
		used[step.ID] = true
		switch step.Priority {
		case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		default:
			step.Priority = models.PriorityMedium
		}
		out = append(out, step)
	}
	return out
}

// RolePlayTurn returns the simulated customer's next reply
func (c *Coach) RolePlayTurn(ctx context.Context, req models.RolePlayTurnRequest, customer *models.Customer, lang string) (string, error) {
	persona := describeProfile(req.Persona)
	background := ""
	if customer != nil {
		background = describeCustomer(customer)
	}

	messages := []llm.ChatMessage{
		{Role: "system", Content: llm.RolePlayScenarioPrompt(req.Scenario, persona, background)},
		{Role: "system", Content: llm.LanguageInstruction(lang)},
	}
	for _, m := range req.History {
		// The model plays the customer, so the rep is the user
		role := "user"
		if m.Role == models.RolePlayCustomer {
			role = "assistant"
		}
		messages = append(messages, llm.ChatMessage{Role: role, Content: m.Content})
	}
	if len(req.History) == 0 || req.History[len(req.History)-1].Role == models.RolePlayCustomer {
		messages = append(messages, llm.ChatMessage{Role: "user", Content: "(The rep is waiting for you to speak.)"})
	}

	resp, err := c.chat(ctx, OpRolePlayTurn, llm.ChatRequest{Messages: messages})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Message), nil
}

// ScoreRolePlay grades a finished practice conversation
func (c *Coach) ScoreRolePlay(ctx context.Context, req models.RolePlayScoreRequest, lang string) (*models.RolePlayScore, error) {
	var out models.RolePlayScore
	err := c.chatJSON(ctx, OpRolePlayScore, lang, llm.ScorerSystemPrompt,
		llm.ScoreRolePlayPrompt(req.Scenario, transcript(req.History)), &out)
	if err != nil {
		return nil, err
	}

	out.Overall = int(clamp(float64(out.Overall), 0, 100))
	for i := range out.Dimensions {
		out.Dimensions[i].Score = int(clamp(float64(out.Dimensions[i].Score), 0, 100))
	}
	return &out, nil
}

// CoursePlanDraft is a generated plan before it is stored
type CoursePlanDraft struct {
	Title     string                `json:"title"`
	Objective string                `json:"objective"`
	Modules   []models.CourseModule `json:"modules"`
	Resources []string              `json:"resources"`
}

// GenerateCoursePlan drafts a coaching plan for customer from its history
func (c *Coach) GenerateCoursePlan(ctx context.Context, customer *models.Customer, history []models.Interaction, lang string) (*CoursePlanDraft, error) {
	var out CoursePlanDraft
	err := c.chatJSON(ctx, OpCoursePlan, lang, llm.CoursePlannerSystemPrompt,
		llm.CoursePlanPrompt(describeCustomer(customer), Digest(history, nil, 20)), &out)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = customer.Name
	}
	if out.Modules == nil {
		out.Modules = []models.CourseModule{}
	}
	if out.Resources == nil {
		out.Resources = []string{}
	}
	return &out, nil
}

// ParseSchedule turns a reminder into a schedule draft. today anchors
// relative dates such as "tomorrow".
func (c *Coach) ParseSchedule(ctx context.Context, text string, today time.Time, lang string) (*models.ScheduleDraft, error) {
	var out models.ScheduleDraft
	err := c.chatJSON(ctx, OpParseSchedule, lang, llm.ScheduleParserSystemPrompt,
		llm.ParseSchedulePrompt(text, today.Format("2006-01-02 (Monday)")), &out)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", out.Date); err != nil {
		out.Date = today.Format("2006-01-02")
	}
	if out.Time != "" {
		if _, err := time.Parse("15:04", out.Time); err != nil {
			out.Time = ""
		}
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = strings.TrimSpace(text)
	}
	return &out, nil
}

// ParseCustomer turns a spoken or typed description into a customer draft
func (c *Coach) ParseCustomer(ctx context.Context, text, lang string) (*models.CustomerDraft, error) {
	var out models.CustomerDraft
	if err := c.chatJSON(ctx, OpParseCustomer, lang, llm.CustomerParserSystemPrompt, llm.ParseCustomerPrompt(text), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractKeywords returns up to ten distinct keywords found in text
func (c *Coach) ExtractKeywords(ctx context.Context, text, lang string) ([]string, error) {
	var out models.KeywordsResponse
	if err := c.chatJSON(ctx, OpKeywords, lang, llm.KeywordsSystemPrompt, llm.KeywordsPrompt(text), &out); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(out.Keywords))
	keywords := make([]string, 0, len(out.Keywords))
	for _, k := range out.Keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keywords = append(keywords, k)
		if len(keywords) == 10 {
			break
		}
	}
	return keywords, nil
}

// WriteReport produces a markdown report over the given interactions.
// names maps customer ids to display names.
func (c *Coach) WriteReport(ctx context.Context, start, end time.Time, interactions []models.Interaction, names map[string]string, lang string) (string, error) {
	prompt := llm.ReportPrompt(start.Format("2006-01-02"), end.Format("2006-01-02"),
		len(interactions), Digest(interactions, names, 100))

	resp, err := c.chat(ctx, OpReport, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "system", Content: llm.ReporterSystemPrompt},
			{Role: "system", Content: llm.LanguageInstruction(lang)},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Message), nil
}

func (c *Coach) chatJSON(ctx context.Context, op, lang, system, prompt string, v any) error {
	resp, err := c.chat(ctx, op, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "system", Content: system},
			{Role: "system", Content: llm.LanguageInstruction(lang)},
			{Role: "user", Content: prompt},
		},
		JSON: true,
	})
	if err != nil {
		return err
	}
	if err := llm.DecodeJSON(resp.Message, v); err != nil {
		c.log.Warn("unparseable model reply", "operation", op, "error", err)
		return domain.NewUpstreamError(upstreamMessage, err)
	}
	return nil
}

func (c *Coach) chat(ctx context.Context, op string, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if c.llm == nil {
		return nil, domain.NewUpstreamError("AI provider is not configured", errors.New("no llm client"))
	}

	start := time.Now()
	resp, err := c.llm.Chat(ctx, req)
	duration := time.Since(start)
	c.metrics.RecordAIRequest(op, err == nil, duration)
	if err != nil {
		return nil, c.upstream(op, err)
	}

	c.log.Debug("ai operation completed", "operation", op, "tokens", resp.TokensUsed, "duration_ms", duration.Milliseconds())
	return resp, nil
}

func (c *Coach) upstream(op string, err error) error {
	c.log.Error("ai operation failed", "operation", op, "error", err)
	return domain.NewUpstreamError(upstreamMessage, fmt.Errorf("%s: %w", op, err))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
