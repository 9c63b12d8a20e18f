package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// NewAccessListCommand creates the accesslist command group.
func NewAccessListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accesslist",
		Aliases: []string{"access-list", "whitelist"},
		Short:   "Manage the IP access list",
		Long:    "List, inspect, add, and remove IP access list entries of a project",
	}

	cmd.AddCommand(newAccessListListCommand())
	cmd.AddCommand(newAccessListGetCommand())
	cmd.AddCommand(newAccessListAddCommand())
	cmd.AddCommand(newAccessListRemoveCommand())

	return cmd
}

func newAccessListListCommand() *cobra.Command {
	var opts listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List access list entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			entries, err := fetchAccessListEntries(cmd, client, opts)
			if err != nil {
				return err
			}

			return outputAccessListEntries(entries)
		},
	}

	opts.register(cmd)

	return cmd
}

func fetchAccessListEntries(cmd *cobra.Command, client atlas.Client, opts listFlags) ([]atlas.AccessListEntry, error) {
	ctx := cmd.Context()

	if opts.AllPages {
		iterator, err := client.AccessLists().Iterate(ctx, opts.listOptions())
		if err != nil {
			return nil, err
		}

		return iterator.All()
	}

	page, err := client.AccessLists().List(ctx, opts.listOptions())
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func outputAccessListEntries(entries []atlas.AccessListEntry) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(entries)
	case OutputFormatYAML:
		return EncodeYAML(entries)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("CIDR Block", "IP Address", "Comment", "Delete After")

		for _, entry := range entries {
			_ = table.Append(entry.CIDRBlock, entry.IPAddress, entry.Comment, FormatTimePtr(entry.DeleteAfterDate))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newAccessListGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VALUE",
		Short: "Show a single access list entry",
		Long:  "Show the access list entry identified by its IP address or CIDR block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			entry, err := client.AccessLists().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return EncodeYAML(entry)
			default:
				return EncodeJSON(entry)
			}
		},
	}
}

func newAccessListAddCommand() *cobra.Command {
	var (
		cidrBlock string
		ipAddress string
		comment   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add access list entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cidrBlock == "" && ipAddress == "" {
				return fmt.Errorf("one of --cidr or --ip is required")
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			entries := []atlas.AccessListEntry{{
				CIDRBlock: cidrBlock,
				IPAddress: ipAddress,
				Comment:   comment,
			}}

			page, err := client.AccessLists().Create(cmd.Context(), entries)
			if err != nil {
				return err
			}

			fmt.Printf("Access list now has %d entries\n", page.TotalCount)

			return nil
		},
	}

	cmd.Flags().StringVar(&cidrBlock, "cidr", "", "CIDR block to allow")
	cmd.Flags().StringVar(&ipAddress, "ip", "", "IP address to allow")
	cmd.Flags().StringVar(&comment, "comment", "", "entry comment")

	return cmd
}

func newAccessListRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove VALUE",
		Short: "Remove an access list entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.AccessLists().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed %s from the access list\n", args[0])

			return nil
		},
	}
}
