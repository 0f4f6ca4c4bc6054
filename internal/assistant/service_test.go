package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskautomator/backend/internal/completion"
	"github.com/taskautomator/backend/internal/model"
)

// fakeProvider returns a canned reply or error and records every request.
type fakeProvider struct {
	reply    string
	err      error
	calls    int
	requests []completion.Request
}

func (f *fakeProvider) Complete(_ context.Context, req completion.Request) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestService(p completion.Provider) *Service {
	return NewService(p, zerolog.Nop())
}

func TestAnalyzeEmail_MeetingAction(t *testing.T) {
	fake := &fakeProvider{reply: `{"analysis":"wants a sync","action_type":"meeting","confidence":0.92,"extracted_data":{"organizer":"bob","duration":"1 hour"}}`}
	svc := newTestService(fake)

	res := svc.AnalyzeEmail(context.Background(), "can we sync tomorrow?")

	require.Len(t, res.Actions, 1)
	assert.Equal(t, model.ActionScheduleMeeting, res.Actions[0].Type)
	assert.Equal(t, "bob", res.Actions[0].Data["organizer"])
	assert.Equal(t, "wants a sync", res.Analysis)
	assert.Equal(t, 0.92, res.Confidence)
}

func TestAnalyzeEmail_TaskAction(t *testing.T) {
	fake := &fakeProvider{reply: `{"analysis":"follow up","action_type":"task","confidence":0.8,"extracted_data":{"task_description":"send report"}}`}
	svc := newTestService(fake)

	res := svc.AnalyzeEmail(context.Background(), "please send the report")

	require.Len(t, res.Actions, 1)
	assert.Equal(t, model.ActionCreateTask, res.Actions[0].Type)
}

func TestAnalyzeEmail_NoActionForOtherTypes(t *testing.T) {
	for _, actionType := range []string{"response", "none", "escalate"} {
		fake := &fakeProvider{reply: `{"analysis":"x","action_type":"` + actionType + `","confidence":0.7}`}
		svc := newTestService(fake)

		res := svc.AnalyzeEmail(context.Background(), "hello")
		if len(res.Actions) != 0 {
			t.Fatalf("action_type %q: expected no actions, got %+v", actionType, res.Actions)
		}
	}
}

func TestAnalyzeEmail_MissingActionType(t *testing.T) {
	fake := &fakeProvider{reply: `{"analysis":"just a note"}`}
	svc := newTestService(fake)

	res := svc.AnalyzeEmail(context.Background(), "fyi")
	assert.Empty(t, res.Actions)
	assert.Equal(t, 0.5, res.Confidence)
}

func TestAnalyzeEmail_NeverFails(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	svc := newTestService(fake)

	res := svc.AnalyzeEmail(context.Background(), "hello")

	assert.Equal(t, 0.0, res.Confidence)
	assert.Empty(t, res.Actions)
	assert.Contains(t, res.Analysis, "connection refused")
}

func TestAnalyzeEmail_MalformedOutputKeepsRawText(t *testing.T) {
	fake := &fakeProvider{reply: "I think this email is about lunch plans."}
	svc := newTestService(fake)

	res := svc.AnalyzeEmail(context.Background(), "lunch?")

	assert.Equal(t, "I think this email is about lunch plans.", res.Analysis)
	assert.Empty(t, res.Actions)
	assert.Equal(t, 0.5, res.Confidence)
}

func TestAnalyzeEmail_ConfidenceClamped(t *testing.T) {
	fake := &fakeProvider{reply: `{"analysis":"x","confidence":1.5}`}
	svc := newTestService(fake)

	res := svc.AnalyzeEmail(context.Background(), "hello")
	assert.Equal(t, 1.0, res.Confidence)
}

func TestAnalyzeEmail_SamplingParams(t *testing.T) {
	fake := &fakeProvider{reply: `{}`}
	svc := newTestService(fake)

	svc.AnalyzeEmail(context.Background(), "hello")

	require.Equal(t, 1, fake.calls)
	req := fake.requests[0]
	assert.Equal(t, 0.1, req.Temperature)
	assert.Equal(t, 1000, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, completion.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "hello")
}

func TestCreateTask_DistinctRecords(t *testing.T) {
	fake := &fakeProvider{reply: "  Enhanced: ship the Q3 report with sign-off.  "}
	svc := newTestService(fake)

	req := model.TaskRequest{
		Description: "ship report",
		AssignedTo:  "carol",
		Deadline:    "2026-09-01",
		Priority:    model.PriorityHigh,
	}

	first, err := svc.CreateTask(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.CreateTask(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Enhanced: ship the Q3 report with sign-off.", first.Description)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.AssignedTo, second.AssignedTo)
	assert.Equal(t, first.Deadline, second.Deadline)
	assert.Equal(t, first.Priority, second.Priority)
	assert.NotEqual(t, first.ID, second.ID)

	if _, err := uuid.Parse(first.ID); err != nil {
		t.Fatalf("task ID is not a UUID: %v", err)
	}
	assert.Equal(t, model.TaskStatusToDo, first.Status)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestCreateTask_PropagatesUpstreamFailure(t *testing.T) {
	fake := &fakeProvider{err: errors.New("auth failed")}
	svc := newTestService(fake)

	_, err := svc.CreateTask(context.Background(), model.TaskRequest{
		Description: "x", AssignedTo: "y", Deadline: "2026-01-01", Priority: model.PriorityLow,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create task")
	assert.Contains(t, err.Error(), "auth failed")
}

func TestScheduleMeeting_ValidPlan(t *testing.T) {
	fake := &fakeProvider{reply: `{"recommendation":"Tuesday works for everyone","best_date":"2026-09-02","suggested_time":"14:30"}`}
	svc := newTestService(fake)

	res, err := svc.ScheduleMeeting(context.Background(), model.MeetingRequest{
		Organizer:     "dave",
		Attendees:     []string{"erin", "frank"},
		ProposedDates: []string{"2026-09-01", "2026-09-02"},
		Duration:      "1 hour",
	})
	require.NoError(t, err)

	assert.Equal(t, "Tuesday works for everyone", res.Recommendation)
	assert.True(t, res.EventCreated)
	assert.Equal(t, "Meeting with dave", res.EventDetails.Summary)
	assert.Equal(t, "2026-09-02T14:30:00", res.EventDetails.StartTime)
	assert.Equal(t, res.EventDetails.StartTime, res.EventDetails.EndTime)
	assert.Equal(t, []string{"erin", "frank"}, res.EventDetails.Attendees)
	assert.Equal(t, "2026-09-02", res.ScheduledTime.Date)
	assert.Equal(t, "14:30", res.ScheduledTime.Time)
}

func TestScheduleMeeting_FallbackFirstProposedDate(t *testing.T) {
	fake := &fakeProvider{reply: "Tuesday morning would be best for this group."}
	svc := newTestService(fake)

	res, err := svc.ScheduleMeeting(context.Background(), model.MeetingRequest{
		Organizer:     "dave",
		ProposedDates: []string{"2026-09-01", "2026-09-02"},
		Duration:      "1 hour",
	})
	require.NoError(t, err)

	assert.Equal(t, "Tuesday morning would be best for this group.", res.Recommendation)
	assert.Equal(t, "2026-09-01", res.ScheduledTime.Date)
	assert.Equal(t, "09:00", res.ScheduledTime.Time)
}

func TestScheduleMeeting_FallbackNoProposedDates(t *testing.T) {
	fake := &fakeProvider{reply: "not json"}
	svc := newTestService(fake)

	res, err := svc.ScheduleMeeting(context.Background(), model.MeetingRequest{
		Organizer: "dave",
		Duration:  "30 minutes",
	})
	require.NoError(t, err)

	assert.Equal(t, "", res.ScheduledTime.Date)
	assert.Equal(t, "09:00", res.ScheduledTime.Time)
	assert.Equal(t, "T09:00:00", res.EventDetails.StartTime)
}

func TestScheduleMeeting_PropagatesUpstreamFailure(t *testing.T) {
	fake := &fakeProvider{err: errors.New("timeout")}
	svc := newTestService(fake)

	_, err := svc.ScheduleMeeting(context.Background(), model.MeetingRequest{Organizer: "dave", Duration: "1 hour"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to schedule meeting")
}

func TestScheduleMeeting_PromptInterpolation(t *testing.T) {
	fake := &fakeProvider{reply: `{}`}
	svc := newTestService(fake)

	_, err := svc.ScheduleMeeting(context.Background(), model.MeetingRequest{
		Organizer:     "dave",
		Attendees:     []string{"erin", "frank"},
		ProposedDates: []string{"2026-09-01"},
		Duration:      "45 minutes",
	})
	require.NoError(t, err)

	require.Equal(t, 1, fake.calls)
	prompt := fake.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "erin, frank")
	assert.Contains(t, prompt, "2026-09-01")
	assert.Contains(t, prompt, "45 minutes")
	assert.Equal(t, 0.2, fake.requests[0].Temperature)
	assert.Equal(t, 800, fake.requests[0].MaxTokens)
}

func TestCategorizeEmail_TrimsReply(t *testing.T) {
	fake := &fakeProvider{reply: "  Scheduling \n"}
	svc := newTestService(fake)

	out, err := svc.CategorizeEmail(context.Background(), "are you free?")
	require.NoError(t, err)
	assert.Equal(t, "Scheduling", out)
	// default sampling: nothing fixed per operation
	assert.Equal(t, 0.0, fake.requests[0].Temperature)
	assert.Equal(t, 0, fake.requests[0].MaxTokens)
}

func TestPrioritizeTask_BuildsTaskInfo(t *testing.T) {
	fake := &fakeProvider{reply: "Handle first thing tomorrow."}
	svc := newTestService(fake)

	out, err := svc.PrioritizeTask(context.Background(), model.TaskRequest{
		Description: "fix login bug",
		AssignedTo:  "gina",
		Deadline:    "2026-09-03",
		Priority:    model.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, "Handle first thing tomorrow.", out)

	prompt := fake.requests[0].Messages[1].Content
	for _, want := range []string{"fix login bug", "gina", "2026-09-03", "Urgent"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}
}
