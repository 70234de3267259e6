package main

import (
	"fmt"
	"io"
	"os"

	aggregatorClient "github.com/KirkDiggler/choicetrail/internal/clients/aggregator"
	"github.com/KirkDiggler/choicetrail/internal/common/clock"
	"github.com/KirkDiggler/choicetrail/internal/models"
	"github.com/KirkDiggler/choicetrail/internal/services/collector"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Feed a JSON-lines action log through the collector",
	Long: `Each line is an object with any of:
  "at"     RFC3339 time the record was dispatched
  "vars"   engine variables to merge before the record
  "player" player character config
  "record" an engine action record
  "choice" an explicitly resolved {scene, question, answer}

Reads stdin when no file or "-" is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open replay log: %w", err)
			}
			defer f.Close()
			in = f
		}

		clk := newReplayClock(clock.New())
		svc, err := newCollector(clk)
		if err != nil {
			return err
		}

		identity := collector.NewMapIdentity(nil, nil)
		out, err := svc.StartSession(cmd.Context(), &collector.StartSessionInput{Identity: identity})
		if err != nil {
			return err
		}

		summary, replayErr := replay(cmd.Context(), in, out.Session, identity, clk)
		if err := out.Session.Close(); err != nil {
			return err
		}
		if replayErr != nil {
			return replayErr
		}

		summary.Print(cmd.OutOrStdout())
		return nil
	},
}

var (
	testName  string
	testPhone string
)

var testAnswerCmd = &cobra.Command{
	Use:   "test-answer",
	Short: "Send a manual test answer to the aggregator",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !aggregatorClient.IsConfigured(cfg.Endpoint) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aggregator endpoint not configured; the answer will only be logged")
		}

		svc, err := newCollector(clock.New())
		if err != nil {
			return err
		}

		identity := collector.NewMapIdentity(map[string]any{
			"playerName":  testName,
			"phoneNumber": testPhone,
		}, nil)
		out, err := svc.StartSession(cmd.Context(), &collector.StartSessionInput{Identity: identity})
		if err != nil {
			return err
		}

		result := sendTestAnswer(cmd, out.Session)
		if err := out.Session.Close(); err != nil {
			return err
		}
		return result
	},
}

func sendTestAnswer(cmd *cobra.Command, session collector.Session) error {
	output := session.ObserveChoice(cmd.Context(), &collector.ObserveChoiceInput{
		Candidate: models.Candidate{
			Scene:    "manual_test",
			Question: "Manual test question",
			Answer:   "Manual test answer",
		},
	})
	if output.Answer == nil {
		return fmt.Errorf("test answer was not admitted: %s", output.Rejection)
	}

	writeAnswer(cmd.OutOrStdout(), output.Answer)
	return nil
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the aggregator is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return ping(cmd, client)
	},
}

func ping(cmd *cobra.Command, client aggregatorClient.Client) error {
	out, err := client.Ping(cmd.Context(), &aggregatorClient.PingInput{})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d %s: %s (%s)\n",
		out.StatusCode, out.Health.Status, out.Health.Message, out.Health.Timestamp)
	return nil
}

func writeAnswer(w io.Writer, answer *models.Answer) {
	fmt.Fprintf(w, "Recorded answer for %s: %s = %s\n", answer.PlayerName, answer.Question, answer.Answer)
}

func init() {
	testAnswerCmd.Flags().StringVar(&testName, "name", "Test Player", "player name on the test answer")
	testAnswerCmd.Flags().StringVar(&testPhone, "phone", "", "phone number on the test answer")
}
