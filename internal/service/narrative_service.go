package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inquirykit/internal/assess"
	"inquirykit/internal/catalog"
	"inquirykit/internal/model"
	"inquirykit/internal/util"
)

var (
	// ErrGenerationInFlight means the same user already has a generation
	// running for this intent.
	ErrGenerationInFlight = errors.New("a generation is already in progress")

	ErrPhaseNotFound    = errors.New("phase not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// NarrativeService produces consultant-voice prose from assessment state.
type NarrativeService struct {
	client *GeminiClient
	guard  *util.InflightGuard
}

func NewNarrativeService(client *GeminiClient, guard *util.InflightGuard) *NarrativeService {
	return &NarrativeService{client: client, guard: guard}
}

// GenerateOverall writes the whole-assessment narrative.
func (s *NarrativeService) GenerateOverall(ctx context.Context, userID int, a *model.Assessment) (string, error) {
	return s.generate(ctx, userID, "overall", overallPrompt(a))
}

// GeneratePhase writes commentary for a single phase.
func (s *NarrativeService) GeneratePhase(ctx context.Context, userID int, a *model.Assessment, phaseID string) (string, error) {
	phase, ok := catalog.PhaseByID(phaseID)
	if !ok {
		return "", ErrPhaseNotFound
	}
	return s.generate(ctx, userID, "phase", phasePrompt(a, phase))
}

// GenerateGapAction writes a recommendation for one identified gap.
func (s *NarrativeService) GenerateGapAction(ctx context.Context, userID int, a *model.Assessment, questionID string) (string, error) {
	gaps := assess.ComputeGaps(a.Responses, a.Notes)
	for i := range gaps {
		if gaps[i].Question.ID == questionID {
			return s.generate(ctx, userID, "gap", gapPrompt(a, &gaps[i]))
		}
	}
	return "", ErrQuestionNotFound
}

func (s *NarrativeService) generate(ctx context.Context, userID int, intent, prompt string) (string, error) {
	if !s.client.Configured() {
		return "", ErrNoAPIKey
	}

	if !s.guard.Acquire(ctx, userID, intent) {
		return "", ErrGenerationInFlight
	}
	defer s.guard.Release(ctx, userID, intent)

	return s.client.Generate(ctx, intent, prompt)
}

// BuildContext summarizes the assessment state for the model. Deterministic:
// phases and questions appear in catalog order, gaps in their prioritized
// order.
func BuildContext(a *model.Assessment) string {
	var b strings.Builder

	name := a.InquiryName
	if name == "" {
		name = "Unnamed inquiry"
	}
	fmt.Fprintf(&b, "Assessment for: %s (%s)\n\n", name, a.ConsultDate)

	if a.SelectedScale != "" {
		fmt.Fprintf(&b, "Scale classification: %s\n", a.SelectedScale)
		if a.CustomBudget != "" {
			fmt.Fprintf(&b, "Working budget: £%sm\n", a.CustomBudget)
		}
		if a.CustomDuration != "" {
			fmt.Fprintf(&b, "Working duration: %s months\n", a.CustomDuration)
		}
		b.WriteString("\n")
	}

	stats := assess.ComputePhaseStats(a.Responses, a.Notes, a.PhaseCommentary)
	for _, phase := range catalog.Phases() {
		st := stats[phase.ID]
		fmt.Fprintf(&b, "%s: %d/%d assessed, %d gaps (%d high-risk)\n",
			phase.Name, st.Answered, st.Total, st.Gaps, st.HighRiskGaps)

		for _, q := range phase.Questions {
			resp, ok := a.Responses[q.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  - [%s] %s", resp.Label(), q.Text)
			if note := a.Notes[q.ID]; note != "" {
				fmt.Fprintf(&b, " | Notes: %s", note)
			}
			b.WriteString("\n")
		}

		if commentary := a.PhaseCommentary[phase.ID]; commentary != "" {
			fmt.Fprintf(&b, "  Phase commentary: %s\n", commentary)
		}
		b.WriteString("\n")
	}

	gaps := assess.ComputeGaps(a.Responses, a.Notes)
	if len(gaps) > 0 {
		fmt.Fprintf(&b, "\nGAPS IDENTIFIED (%d total):\n", len(gaps))
		for _, g := range gaps {
			fmt.Fprintf(&b, "  - [%s RISK] %s (%s)",
				strings.ToUpper(string(g.Question.Risk)), g.Question.Text, gapStatus(g.Response))
			if g.Note != "" {
				fmt.Fprintf(&b, " | Notes: %s", g.Note)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func gapStatus(r assess.Response) string {
	if r == assess.ResponseNo {
		return "Not in place"
	}
	return "Partial"
}

func overallPrompt(a *model.Assessment) string {
	return fmt.Sprintf(`You are a senior public inquiry consultant advising UK government departments and inquiry teams. Based on the following diagnostic assessment data, write a concise overall assessment narrative (3-5 paragraphs).

The assessment should:
- Open with a headline readiness judgement (e.g. "The inquiry is well-positioned..." or "Significant gaps remain...")
- Identify the most critical risks and gaps, prioritised by severity
- Note areas of strength where the inquiry is well-prepared
- Highlight cross-cutting themes (e.g. if multiple phases show the same weakness)
- Close with 2-3 strategic priority recommendations
- Be written in professional consulting language suitable for a senior civil servant audience
- Reference specific questions/phases where relevant
- Be practical and actionable, not generic

ASSESSMENT DATA:
%s

Write the overall assessment narrative now. Do not include headers or bullet points — write flowing prose paragraphs.`, BuildContext(a))
}

func phasePrompt(a *model.Assessment, phase catalog.Phase) string {
	return fmt.Sprintf(`You are a senior public inquiry consultant. Based on the following assessment data, write a focused commentary specifically for the "%s" phase (2-3 paragraphs).

The commentary should:
- Assess the overall readiness of this specific phase
- Identify the most important gaps and risks within this phase
- Note any strengths or areas that are well-handled
- Provide specific, actionable recommendations for this phase
- Reference the specific questions and their responses
- Be practical and written for a senior inquiry team audience

FULL ASSESSMENT DATA (for context):
%s

Write the commentary for "%s" now. Flowing prose, no bullet points or headers.`, phase.Name, BuildContext(a), phase.Name)
}

func gapPrompt(a *model.Assessment, g *assess.Gap) string {
	notes := ""
	if g.Note != "" {
		notes = fmt.Sprintf("Consultant notes: %s\n", g.Note)
	}
	status := "Not in place"
	if g.Response == assess.ResponsePartial {
		status = "Partially in place"
	}
	return fmt.Sprintf(`You are a senior public inquiry consultant. For the following specific gap identified in an inquiry assessment, write a focused action recommendation (1-2 paragraphs).

GAP: %s
Phase: %s
Risk level: %s
Status: %s
Standard guidance: %s
%s
FULL ASSESSMENT CONTEXT:
%s

Write a specific, actionable recommendation for addressing this gap. Consider the inquiry's overall context, scale, and other gaps. Be practical and direct.`,
		g.Question.Text, g.Phase, g.Question.Risk, status, g.Question.Guidance, notes, BuildContext(a))
}
