package model

import "time"

// Priority levels accepted for a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ActionType identifies a structured suggestion derived from email analysis.
type ActionType string

const (
	ActionScheduleMeeting ActionType = "schedule_meeting"
	ActionCreateTask      ActionType = "create_task"
)

// TaskStatusToDo is the fixed initial status of every created task.
const TaskStatusToDo = "To Do"

// EmailAnalysisRequest carries the raw email text to analyze.
type EmailAnalysisRequest struct {
	EmailText string `json:"email_text"`
}

// Action is a single suggested follow-up extracted from an email.
type Action struct {
	Type ActionType             `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// AnalysisResult is produced fresh per analyze-email call; never stored.
type AnalysisResult struct {
	Analysis   string   `json:"analysis"`
	Actions    []Action `json:"actions"`
	Confidence float64  `json:"confidence"`
}

// EmailProcessResponse is the wire shape returned by POST /analyze-email.
type EmailProcessResponse struct {
	Analysis     string   `json:"analysis"`
	ActionsTaken []Action `json:"actions_taken"`
}

// TaskRequest describes a task to create.
type TaskRequest struct {
	Description string   `json:"description"`
	AssignedTo  string   `json:"assigned_to"`
	Deadline    string   `json:"deadline"`
	Priority    Priority `json:"priority"`
}

// Task is the response record for a created task. It only lives for the
// duration of the request; two identical requests yield two unrelated tasks
// with distinct IDs.
type Task struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assigned_to"`
	Deadline    string    `json:"deadline"`
	Priority    Priority  `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MeetingRequest describes a meeting to schedule. ProposedDates may be empty;
// scheduling then falls back to an empty date string.
type MeetingRequest struct {
	Organizer     string   `json:"organizer"`
	Attendees     []string `json:"attendees"`
	ProposedDates []string `json:"proposed_dates"`
	Duration      string   `json:"duration"`
}

// EventDetails is the simulated calendar event synthesized for a scheduled
// meeting. No real calendar integration exists.
type EventDetails struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Attendees   []string `json:"attendees"`
	Organizer   string   `json:"organizer"`
}

// ScheduledTime is the date/time pair picked for a meeting.
type ScheduledTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// MeetingScheduleResult is the wire shape returned by POST /schedule-meeting.
// EventCreated is always true on success.
type MeetingScheduleResult struct {
	Recommendation string        `json:"recommendation"`
	EventCreated   bool          `json:"event_created"`
	EventDetails   EventDetails  `json:"event_details"`
	ScheduledTime  ScheduledTime `json:"scheduled_time"`
}
