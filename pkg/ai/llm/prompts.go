package llm

import (
	"fmt"
	"strings"
)

// System prompts for the coaching operations

const (
	// AnalystSystemPrompt turns a raw conversation into structured sales intelligence
	AnalystSystemPrompt = `You are an experienced B2B sales coach reviewing a conversation a sales rep had with a prospect.

Extract structured intelligence from the conversation:
- Who the counterpart is (name, company, role, industry, one-line summary)
- Their pain points and key interests
- The current pipeline stage, described in a few words
- The probability of closing (0-100)
- Concrete next steps with a priority (high, medium, low) and a due date (YYYY-MM-DD) when one is implied
- Conversation metrics: rep talk ratio (0-1), question rate (questions per minute), sentiment (positive, neutral, negative), your confidence in the analysis (0-1)
- Two to five coaching suggestions for the rep

Respond with a single JSON object:
{"customer_profile":{"name":"","company":"","role":"","industry":"","summary":""},
 "intelligence":{"pain_points":[],"key_interests":[],"current_stage":"","probability":0,
   "next_steps":[{"action":"","priority":"medium","due_date":""}]},
 "metrics":{"talk_ratio":0,"question_rate":0,"sentiment":"neutral","confidence_score":0},
 "suggestions":[]}`

	// RolePlaySystemPrompt makes the model play the customer in a practice session
	RolePlaySystemPrompt = `You are playing a customer in a sales practice session. Stay in character at all times.

Rules:
1. Answer as the customer would, with realistic objections and questions
2. Do not coach the rep or break character
3. Keep each reply short, like spoken conversation (one to four sentences)
4. Become more receptive only when the rep earns it`

	// ScorerSystemPrompt grades a finished practice session
	ScorerSystemPrompt = `You are a sales coach grading a practice conversation between a rep and a simulated customer.

Score the rep from 0 to 100 overall and on these dimensions: discovery, objection handling, value articulation, closing.
Give a short comment per dimension, two to four strengths, two to four improvements, and a one-paragraph summary.

Respond with a single JSON object:
{"overall":0,"dimensions":[{"name":"","score":0,"comment":""}],"strengths":[],"improvements":[],"summary":""}`

	// CoursePlannerSystemPrompt drafts a coaching plan for working one customer
	CoursePlannerSystemPrompt = `You are a sales enablement lead designing a short coaching plan that helps a rep win one specific customer.

Build the plan from what is known about the customer and the past conversations.
Use three to six ordered modules, each with concrete topics and a duration such as "30 min".

Respond with a single JSON object:
{"title":"","objective":"","modules":[{"name":"","topics":[],"duration":""}],"resources":[]}`

	// ScheduleParserSystemPrompt turns a spoken or typed reminder into a schedule
	ScheduleParserSystemPrompt = `You convert a sales rep's spoken or typed reminder into a follow-up task.

Resolve relative dates ("tomorrow", "next Friday") against the given current date.
Leave time empty when none is stated. Use 24-hour HH:MM.

Respond with a single JSON object:
{"title":"","date":"YYYY-MM-DD","time":"","customer_name":"","notes":""}`

	// CustomerParserSystemPrompt turns a spoken or typed description into a contact
	CustomerParserSystemPrompt = `You convert a sales rep's spoken or typed description of a contact into a customer record.
Leave unknown fields empty. Never invent contact details.

Respond with a single JSON object:
{"name":"","company":"","role":"","industry":"","email":"","phone":"","notes":"","tags":[]}`

	// KeywordsSystemPrompt extracts search keywords
	KeywordsSystemPrompt = `You extract the most important keywords from sales notes: products, needs, objections, competitors, decision makers.
Return at most ten short keywords in the language of the text.

Respond with a single JSON object:
{"keywords":[]}`

	// ReporterSystemPrompt writes a period report over many conversations
	ReporterSystemPrompt = `You are a sales manager writing a concise activity report for one of your reps.

Report Guidelines:
1. Summary of the period (two or three sentences)
2. Key accounts and where each one stands
3. Recurring pain points and objections
4. Risks and stalled deals
5. Recommended focus for the next period

Use markdown headings and bullet points. Be specific and cite customers by name.`
)

// languageNames maps supported output languages to an instruction-friendly name
var languageNames = map[string]string{
	"zh": "Simplified Chinese",
	"en": "English",
	"ja": "Japanese",
	"ko": "Korean",
}

// LanguageInstruction tells the model which language to write in
func LanguageInstruction(lang string) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames["zh"]
	}
	return fmt.Sprintf("Write every human-readable value in %s. Keep JSON keys and enum values in English.", name)
}

// AnalyzeInteractionPrompt builds the user prompt for conversation analysis
func AnalyzeInteractionPrompt(conversation, date, knownCustomer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conversation date: %s\n", date)
	if knownCustomer != "" {
		fmt.Fprintf(&b, "Known customer record:\n%s\n", knownCustomer)
	}
	fmt.Fprintf(&b, "\nConversation:\n%s", conversation)
	return b.String()
}

// RolePlayScenarioPrompt builds the system context for one practice session
func RolePlayScenarioPrompt(scenario, persona, customerContext string) string {
	var b strings.Builder
	b.WriteString(RolePlaySystemPrompt)
	fmt.Fprintf(&b, "\n\nScenario: %s", scenario)
	if persona != "" {
		fmt.Fprintf(&b, "\nYour persona: %s", persona)
	}
	if customerContext != "" {
		fmt.Fprintf(&b, "\nBackground on the customer you are playing:\n%s", customerContext)
	}
	return b.String()
}

// ScoreRolePlayPrompt builds the user prompt for grading a transcript
func ScoreRolePlayPrompt(scenario, transcript string) string {
	return fmt.Sprintf("Scenario: %s\n\nTranscript:\n%s", scenario, transcript)
}

// CoursePlanPrompt builds the user prompt for plan generation
func CoursePlanPrompt(customer, history string) string {
	if history == "" {
		history = "(no recorded conversations yet)"
	}
	return fmt.Sprintf("Customer:\n%s\n\nPast conversations:\n%s", customer, history)
}

// ParseSchedulePrompt builds the user prompt for reminder parsing
func ParseSchedulePrompt(text, today string) string {
	return fmt.Sprintf("Current date: %s\n\nReminder:\n%s", today, text)
}

// ParseCustomerPrompt builds the user prompt for contact parsing
func ParseCustomerPrompt(text string) string {
	return fmt.Sprintf("Description:\n%s", text)
}

// KeywordsPrompt builds the user prompt for keyword extraction
func KeywordsPrompt(text string) string {
	return fmt.Sprintf("Text:\n%s", text)
}

// ReportPrompt builds the user prompt for a period report
func ReportPrompt(start, end string, count int, digest string) string {
	return fmt.Sprintf(`Period: %s to %s
Conversations: %d

%s`, start, end, count, digest)
}
