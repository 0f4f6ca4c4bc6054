package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "taskctl",
		Short: "CLI client for the Task Automator REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8000", "Task automator base URL")

	// health subcommand
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(healthCmd)

	// analyze subcommand
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an email and print suggested actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			if text == "" {
				return fmt.Errorf("--text required")
			}
			return runAnalyze(apiFlag, text, os.Stdout)
		},
	}
	analyzeCmd.Flags().StringP("text", "t", "", "Email text to analyze (required)")
	_ = analyzeCmd.MarkFlagRequired("text")
	rootCmd.AddCommand(analyzeCmd)

	// task subcommand
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Create a task with an AI-enhanced description",
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			assignedTo, _ := cmd.Flags().GetString("assigned-to")
			deadline, _ := cmd.Flags().GetString("deadline")
			priority, _ := cmd.Flags().GetString("priority")
			return runCreateTask(apiFlag, description, assignedTo, deadline, priority, os.Stdout)
		},
	}
	taskCmd.Flags().StringP("description", "d", "", "Task description (required)")
	taskCmd.Flags().String("assigned-to", "", "Assignee (required)")
	taskCmd.Flags().String("deadline", "", "Deadline date, YYYY-MM-DD (required)")
	taskCmd.Flags().StringP("priority", "p", "Medium", "Priority: Low|Medium|High|Urgent")
	_ = taskCmd.MarkFlagRequired("description")
	_ = taskCmd.MarkFlagRequired("assigned-to")
	_ = taskCmd.MarkFlagRequired("deadline")
	rootCmd.AddCommand(taskCmd)

	// meeting subcommand
	meetingCmd := &cobra.Command{
		Use:   "meeting",
		Short: "Request meeting scheduling recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			organizer, _ := cmd.Flags().GetString("organizer")
			attendees, _ := cmd.Flags().GetStringSlice("attendee")
			dates, _ := cmd.Flags().GetStringSlice("date")
			duration, _ := cmd.Flags().GetString("duration")
			return runScheduleMeeting(apiFlag, organizer, attendees, dates, duration, os.Stdout)
		},
	}
	meetingCmd.Flags().StringP("organizer", "o", "", "Meeting organizer (required)")
	meetingCmd.Flags().StringSlice("attendee", nil, "Attendee, repeatable")
	meetingCmd.Flags().StringSlice("date", nil, "Proposed date YYYY-MM-DD, repeatable")
	meetingCmd.Flags().String("duration", "1 hour", "Meeting duration")
	_ = meetingCmd.MarkFlagRequired("organizer")
	rootCmd.AddCommand(meetingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
