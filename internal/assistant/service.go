package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskautomator/backend/internal/completion"
	"github.com/taskautomator/backend/internal/metrics"
	"github.com/taskautomator/backend/internal/model"
)

// Sampling parameters are fixed per operation.
const (
	emailAnalysisTemperature = 0.1
	emailAnalysisMaxTokens   = 1000

	taskEnhanceTemperature = 0.3
	taskEnhanceMaxTokens   = 500

	meetingTemperature = 0.2
	meetingMaxTokens   = 800
)

// Service is the analysis layer: it builds a prompt from a validated request,
// invokes the completion provider exactly once, parses the reply with
// deterministic fallbacks and shapes the response contract. It holds no
// state across calls.
type Service struct {
	provider completion.Provider
	log      zerolog.Logger
}

func NewService(p completion.Provider, log zerolog.Logger) *Service {
	return &Service{provider: p, log: log}
}

// AnalyzeEmail analyzes email content and derives at most one suggested
// action. It never returns an error: an upstream failure degrades to a zero
// confidence result carrying the failure message.
func (s *Service) AnalyzeEmail(ctx context.Context, emailText string) *model.AnalysisResult {
	out, err := s.provider.Complete(ctx, completion.Request{
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: emailAnalysisSystemPrompt},
			{Role: completion.RoleUser, Content: fmt.Sprintf(emailAnalysisUserPromptTmpl, emailText)},
		},
		Temperature: emailAnalysisTemperature,
		MaxTokens:   emailAnalysisMaxTokens,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("email analysis failed")
		metrics.RecordEmailAnalyzed("degraded")
		return &model.AnalysisResult{
			Analysis:   fmt.Sprintf("Error analyzing email: %v", err),
			Actions:    []model.Action{},
			Confidence: 0.0,
		}
	}

	parsed, derr := decodeEmailAnalysis(out)
	if derr != nil {
		// Reply was not the requested JSON shape; relay the raw text.
		parsed = emailAnalysis{
			Analysis:      out,
			ActionType:    "none",
			Confidence:    0.5,
			ExtractedData: map[string]interface{}{},
		}
	}

	actions := []model.Action{}
	switch parsed.ActionType {
	case "meeting":
		actions = append(actions, model.Action{Type: model.ActionScheduleMeeting, Data: parsed.ExtractedData})
	case "task":
		actions = append(actions, model.Action{Type: model.ActionCreateTask, Data: parsed.ExtractedData})
	}

	metrics.RecordEmailAnalyzed("success")
	return &model.AnalysisResult{
		Analysis:   parsed.Analysis,
		Actions:    actions,
		Confidence: clamp01(parsed.Confidence),
	}
}

// CreateTask asks the completion service to rewrite the task description and
// returns a fresh Task record. Nothing is stored: two identical requests
// produce two unrelated tasks with distinct IDs.
func (s *Service) CreateTask(ctx context.Context, req model.TaskRequest) (*model.Task, error) {
	prompt := fmt.Sprintf(taskEnhancementPromptTmpl, req.Description, req.AssignedTo, req.Deadline, req.Priority)

	out, err := s.provider.Complete(ctx, completion.Request{
		Messages:    []completion.Message{{Role: completion.RoleUser, Content: prompt}},
		Temperature: taskEnhanceTemperature,
		MaxTokens:   taskEnhanceMaxTokens,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("task creation failed")
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(out),
		AssignedTo:  req.AssignedTo,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Status:      model.TaskStatusToDo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	metrics.RecordTaskGenerated("api")
	return task, nil
}

// ScheduleMeeting asks the completion service for scheduling recommendations
// and synthesizes a simulated calendar confirmation. No real calendar
// integration exists.
func (s *Service) ScheduleMeeting(ctx context.Context, req model.MeetingRequest) (*model.MeetingScheduleResult, error) {
	prompt := fmt.Sprintf(meetingAnalysisPromptTmpl,
		req.Organizer,
		strings.Join(req.Attendees, ", "),
		strings.Join(req.ProposedDates, ", "),
		req.Duration,
	)

	out, err := s.provider.Complete(ctx, completion.Request{
		Messages:    []completion.Message{{Role: completion.RoleUser, Content: prompt}},
		Temperature: meetingTemperature,
		MaxTokens:   meetingMaxTokens,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("meeting scheduling failed")
		return nil, fmt.Errorf("failed to schedule meeting: %w", err)
	}

	plan, derr := decodeMeetingPlan(out)
	if derr != nil {
		best := ""
		if len(req.ProposedDates) > 0 {
			best = req.ProposedDates[0]
		}
		plan = meetingPlan{Recommendation: out, BestDate: best, SuggestedTime: "09:00"}
	}

	recommendation := plan.Recommendation
	description := plan.Recommendation
	if plan.Recommendation == "" {
		recommendation = "Meeting analysis completed"
		description = "Meeting scheduled"
	}

	// Simulated event: start and end coincide, duration is advisory only.
	startTime := fmt.Sprintf("%sT%s:00", plan.BestDate, plan.SuggestedTime)

	return &model.MeetingScheduleResult{
		Recommendation: recommendation,
		EventCreated:   true,
		EventDetails: model.EventDetails{
			Summary:     fmt.Sprintf("Meeting with %s", req.Organizer),
			Description: description,
			StartTime:   startTime,
			EndTime:     startTime,
			Attendees:   req.Attendees,
			Organizer:   req.Organizer,
		},
		ScheduledTime: model.ScheduledTime{Date: plan.BestDate, Time: plan.SuggestedTime},
	}, nil
}

// CategorizeEmail returns a free-text category for an email. Provider default
// sampling is used.
func (s *Service) CategorizeEmail(ctx context.Context, emailText string) (string, error) {
	out, err := s.provider.Complete(ctx, completion.Request{
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: categorizeSystemPrompt},
			{Role: completion.RoleUser, Content: fmt.Sprintf("Categorize this email: %s", emailText)},
		},
	})
	if err != nil {
		s.log.Error().Err(err).Msg("email categorization failed")
		return "", fmt.Errorf("failed to categorize email: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// PrioritizeTask returns free-text handling advice for a task. Provider
// default sampling is used.
func (s *Service) PrioritizeTask(ctx context.Context, req model.TaskRequest) (string, error) {
	taskInfo := fmt.Sprintf(
		"Description: %s\nAssigned To: %s\nDeadline: %s\nPriority: %s",
		req.Description, req.AssignedTo, req.Deadline, req.Priority,
	)

	out, err := s.provider.Complete(ctx, completion.Request{
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: prioritizeSystemPrompt},
			{Role: completion.RoleUser, Content: fmt.Sprintf("Analyze this task and suggest optimal handling: %s", taskInfo)},
		},
	})
	if err != nil {
		s.log.Error().Err(err).Msg("task prioritization failed")
		return "", fmt.Errorf("failed to prioritize task: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
