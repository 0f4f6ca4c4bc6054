package validate

import (
	"fmt"

	"github.com/taskautomator/backend/internal/model"
)

// NonEmpty rejects a missing or empty required field.
func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", model.ErrValidation, field)
	}
	return nil
}

// TaskPriority rejects values outside the enumerated set.
func TaskPriority(p model.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("%w: priority must be one of Low, Medium, High, Urgent", model.ErrValidation)
	}
	return nil
}

// -------- Request specific helpers ----------

// EmailAnalysis validates input for analyze-email and categorize-email.
func EmailAnalysis(req model.EmailAnalysisRequest) error {
	return NonEmpty("email_text", req.EmailText)
}

// CreateTask validates input for create-task and prioritize-task.
func CreateTask(req model.TaskRequest) error {
	if err := NonEmpty("description", req.Description); err != nil {
		return err
	}
	if err := NonEmpty("assigned_to", req.AssignedTo); err != nil {
		return err
	}
	if err := NonEmpty("deadline", req.Deadline); err != nil {
		return err
	}
	return TaskPriority(req.Priority)
}

// ScheduleMeeting validates input for schedule-meeting. Attendees and
// proposed_dates may be empty; an empty proposed_dates falls back to an empty
// best date downstream.
func ScheduleMeeting(req model.MeetingRequest) error {
	if err := NonEmpty("organizer", req.Organizer); err != nil {
		return err
	}
	return NonEmpty("duration", req.Duration)
}
