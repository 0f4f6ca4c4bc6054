package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/taskautomator/backend/internal/model"
)

// emailAnalysis is the decoded form of the JSON shape requested by the email
// analysis prompt, with every key defaulted.
type emailAnalysis struct {
	Analysis      string
	ActionType    string
	Confidence    float64
	ExtractedData map[string]interface{}
}

// decodeEmailAnalysis parses completion text into a fully-defaulted
// emailAnalysis. Missing keys never fail; text that is not a JSON object
// yields an error wrapping model.ErrMalformedOutput.
func decodeEmailAnalysis(raw string) (emailAnalysis, error) {
	var aux struct {
		Analysis      *string                `json:"analysis"`
		ActionType    *string                `json:"action_type"`
		Confidence    *float64               `json:"confidence"`
		ExtractedData map[string]interface{} `json:"extracted_data"`
	}
	if err := json.Unmarshal([]byte(raw), &aux); err != nil {
		return emailAnalysis{}, fmt.Errorf("%w: %v", model.ErrMalformedOutput, err)
	}

	out := emailAnalysis{
		Analysis:      "Analysis completed",
		Confidence:    0.5,
		ExtractedData: map[string]interface{}{},
	}
	if aux.Analysis != nil {
		out.Analysis = *aux.Analysis
	}
	if aux.ActionType != nil {
		out.ActionType = *aux.ActionType
	}
	if aux.Confidence != nil {
		out.Confidence = *aux.Confidence
	}
	if aux.ExtractedData != nil {
		out.ExtractedData = aux.ExtractedData
	}
	return out, nil
}

// meetingPlan is the decoded form of the meeting scheduling reply. Only the
// keys the response contract consumes are retained; agenda/preparation/
// follow_up stay advisory text inside the recommendation.
type meetingPlan struct {
	Recommendation string
	BestDate       string
	SuggestedTime  string
}

// decodeMeetingPlan parses completion text into a fully-defaulted meetingPlan
// or reports model.ErrMalformedOutput.
func decodeMeetingPlan(raw string) (meetingPlan, error) {
	var aux struct {
		Recommendation *string `json:"recommendation"`
		BestDate       *string `json:"best_date"`
		SuggestedTime  *string `json:"suggested_time"`
	}
	if err := json.Unmarshal([]byte(raw), &aux); err != nil {
		return meetingPlan{}, fmt.Errorf("%w: %v", model.ErrMalformedOutput, err)
	}

	out := meetingPlan{SuggestedTime: "09:00"}
	if aux.Recommendation != nil {
		out.Recommendation = *aux.Recommendation
	}
	if aux.BestDate != nil {
		out.BestDate = *aux.BestDate
	}
	if aux.SuggestedTime != nil {
		out.SuggestedTime = *aux.SuggestedTime
	}
	return out, nil
}
