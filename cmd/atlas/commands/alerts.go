package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// NewAlertsCommand creates the alerts command group.
func NewAlertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alerts",
		Aliases: []string{"alert"},
		Short:   "Manage alerts",
		Long:    "List, inspect, and acknowledge the alerts of a project",
	}

	cmd.AddCommand(newAlertsListCommand())
	cmd.AddCommand(newAlertsGetCommand())
	cmd.AddCommand(newAlertsAckCommand())
	cmd.AddCommand(newAlertsUnackCommand())

	return cmd
}

func newAlertsListCommand() *cobra.Command {
	var (
		opts   listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Long:  "List the alerts of a project, optionally filtered by status (TRACKING, OPEN, CLOSED)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alerts, err := fetchAlerts(cmd, client, atlas.AlertStatus(status), opts)
			if err != nil {
				return err
			}

			return outputAlerts(alerts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "filter by alert status (TRACKING, OPEN, CLOSED)")

	return cmd
}

func fetchAlerts(cmd *cobra.Command, client atlas.Client, status atlas.AlertStatus, opts listFlags) ([]atlas.Alert, error) {
	ctx := cmd.Context()

	if opts.AllPages {
		iterator, err := client.Alerts().Iterate(ctx, status, opts.listOptions())
		if err != nil {
			return nil, err
		}

		return iterator.All()
	}

	page, err := client.Alerts().List(ctx, status, opts.listOptions())
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func outputAlerts(alerts []atlas.Alert) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(alerts)
	case OutputFormatYAML:
		return EncodeYAML(alerts)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Event", "Status", "Cluster", "Created", "Acknowledged Until")

		for _, alert := range alerts {
			_ = table.Append(alert.ID, alert.EventTypeName, alert.Status, alert.ClusterName,
				FormatTimePtr(alert.Created), FormatTimePtr(alert.AcknowledgedUntil))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newAlertsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ALERT_ID",
		Short: "Show a single alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alert, err := client.Alerts().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return EncodeYAML(alert)
			default:
				return EncodeJSON(alert)
			}
		},
	}
}

func newAlertsAckCommand() *cobra.Command {
	var (
		duration time.Duration
		forever  bool
		comment  string
	)

	cmd := &cobra.Command{
		Use:   "ack ALERT_ID",
		Short: "Acknowledge an alert",
		Long:  "Acknowledge an alert for a duration, or forever with --forever",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var alert *atlas.Alert
			if forever {
				alert, err = client.Alerts().AcknowledgeForever(cmd.Context(), args[0], comment)
			} else {
				until := time.Now().Add(duration)
				alert, err = client.Alerts().Acknowledge(cmd.Context(), args[0], until, comment)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Alert %s acknowledged until %s\n", alert.ID, FormatTimePtr(alert.AcknowledgedUntil))

			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "for", time.Hour, "how long to acknowledge the alert for")
	cmd.Flags().BoolVar(&forever, "forever", false, "acknowledge the alert permanently")
	cmd.Flags().StringVar(&comment, "comment", "", "acknowledgement comment")

	return cmd
}

func newAlertsUnackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unack ALERT_ID",
		Short: "Unacknowledge an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alert, err := client.Alerts().Unacknowledge(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Alert %s unacknowledged\n", alert.ID)

			return nil
		},
	}
}
