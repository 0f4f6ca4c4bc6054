package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL string) *resty.Client {
	return resty.New().
		SetBaseURL(apiURL).
		SetHeader("Content-Type", "application/json")
}

func runHealth(apiURL string, out io.Writer) error {
	resp, err := newClient(apiURL).R().Get("/api/v1/health")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return printJSON(out, resp.Body())
}

func runAnalyze(apiURL, emailText string, out io.Writer) error {
	payload := map[string]interface{}{"email_text": emailText}
	return postJSON(apiURL, "/api/v1/analyze-email", payload, out)
}

func runCreateTask(apiURL, description, assignedTo, deadline, priority string, out io.Writer) error {
	payload := map[string]interface{}{
		"description": description,
		"assigned_to": assignedTo,
		"deadline":    deadline,
		"priority":    priority,
	}
	return postJSON(apiURL, "/api/v1/create-task", payload, out)
}

func runScheduleMeeting(apiURL, organizer string, attendees, dates []string, duration string, out io.Writer) error {
	if attendees == nil {
		attendees = []string{}
	}
	if dates == nil {
		dates = []string{}
	}
	payload := map[string]interface{}{
		"organizer":      organizer,
		"attendees":      attendees,
		"proposed_dates": dates,
		"duration":       duration,
	}
	return postJSON(apiURL, "/api/v1/schedule-meeting", payload, out)
}

func postJSON(apiURL, path string, payload interface{}, out io.Writer) error {
	resp, err := newClient(apiURL).R().SetBody(payload).Post(path)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return printJSON(out, resp.Body())
}

func printJSON(out io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		_, werr := out.Write(body)
		return werr
	}
	buf.WriteByte('\n')
	_, err := out.Write(buf.Bytes())
	return err
}
