package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/voiceclock/alarm-backend/internal/client"
	"github.com/voiceclock/alarm-backend/internal/platform/logger"
)

// alarm-agent is the tool-calling front end for the alarm API. Each
// subcommand maps to one remote operation; results are printed as the
// client's human-readable summaries.

var (
	baseURL    string
	timeoutSec int
	maxRetries int

	apiClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "alarm-agent",
	Short: "Tool client for the AI alarm clock API",
	Long: `alarm-agent manages scheduled alarms on a remote alarm service.
It validates inputs locally, talks to the API over HTTPS with pooled
connections, and retries transient server errors automatically.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(os.Getenv("LOG_MODE"))
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		apiClient = client.New(log, client.Config{
			BaseURL:    baseURL,
			Timeout:    time.Duration(timeoutSec) * time.Second,
			MaxRetries: maxRetries,
		})
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new alarm",
	RunE: func(cmd *cobra.Command, args []string) error {
		alarmID, _ := cmd.Flags().GetString("alarm-id")
		userID, _ := cmd.Flags().GetString("user-id")
		alarmTime, _ := cmd.Flags().GetString("time")
		alarmName, _ := cmd.Flags().GetString("name")
		personaID, _ := cmd.Flags().GetString("persona")
		repeatDays, _ := cmd.Flags().GetString("repeat-days")
		enabled, _ := cmd.Flags().GetBool("enabled")

		fmt.Println(apiClient.CreateAlarm(context.Background(), client.CreateAlarmArgs{
			AlarmID:     alarmID,
			UserID:      userID,
			AlarmTime:   alarmTime,
			AlarmName:   alarmName,
			AIPersonaID: personaID,
			RepeatDays:  repeatDays,
			IsEnabled:   &enabled,
		}))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <alarm-id>",
	Short: "Fetch one alarm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(apiClient.GetAlarm(context.Background(), args[0]))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List a user's alarms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(apiClient.ListAlarms(context.Background(), args[0]))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <alarm-id>",
	Short: "Update an existing alarm (only the flags you pass are sent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updateArgs := client.UpdateAlarmArgs{AlarmID: args[0]}
		if cmd.Flags().Changed("time") {
			v, _ := cmd.Flags().GetString("time")
			updateArgs.AlarmTime = &v
		}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			updateArgs.AlarmName = &v
		}
		if cmd.Flags().Changed("persona") {
			v, _ := cmd.Flags().GetString("persona")
			updateArgs.AIPersonaID = &v
		}
		if cmd.Flags().Changed("repeat-days") {
			v, _ := cmd.Flags().GetString("repeat-days")
			updateArgs.RepeatDays = &v
		}
		if cmd.Flags().Changed("enabled") {
			v, _ := cmd.Flags().GetBool("enabled")
			updateArgs.IsEnabled = &v
		}
		fmt.Println(apiClient.UpdateAlarm(context.Background(), updateArgs))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <alarm-id>",
	Short: "Delete an alarm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(apiClient.DeleteAlarm(context.Background(), args[0]))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "alarm API base URL (default from ALARM_API_BASE_URL)")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 0, "request timeout in seconds (default 30)")
	rootCmd.PersistentFlags().IntVar(&maxRetries, "max-retries", 0, "retry ceiling for transient server errors (default 3)")

	createCmd.Flags().String("alarm-id", "", "unique alarm id (required)")
	createCmd.Flags().String("user-id", "", "owner user id (required)")
	createCmd.Flags().String("time", "", "alarm time, HH:MM (required)")
	createCmd.Flags().String("name", "", "alarm name")
	createCmd.Flags().String("persona", "", "AI persona id (gentle, energetic, informative, humorous, strict)")
	createCmd.Flags().String("repeat-days", "", "repeat weekdays, e.g. 1,2,3,4,5 (1=Mon .. 7=Sun)")
	createCmd.Flags().Bool("enabled", true, "whether the alarm starts enabled")
	_ = createCmd.MarkFlagRequired("alarm-id")
	_ = createCmd.MarkFlagRequired("user-id")
	_ = createCmd.MarkFlagRequired("time")

	updateCmd.Flags().String("time", "", "new alarm time, HH:MM")
	updateCmd.Flags().String("name", "", "new alarm name")
	updateCmd.Flags().String("persona", "", "new AI persona id")
	updateCmd.Flags().String("repeat-days", "", "new repeat weekdays")
	updateCmd.Flags().Bool("enabled", true, "enable or disable the alarm")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
