package commands

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// NewDatabaseUsersCommand creates the dbusers command group.
func NewDatabaseUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dbusers",
		Aliases: []string{"dbuser", "database-users"},
		Short:   "Manage database users",
		Long:    "List, inspect, create, and delete the database users of a project",
	}

	cmd.AddCommand(newDatabaseUsersListCommand())
	cmd.AddCommand(newDatabaseUsersGetCommand())
	cmd.AddCommand(newDatabaseUsersCreateCommand())
	cmd.AddCommand(newDatabaseUsersDeleteCommand())

	return cmd
}

func newDatabaseUsersListCommand() *cobra.Command {
	var opts listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List database users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := fetchDatabaseUsers(cmd, client, opts)
			if err != nil {
				return err
			}

			return outputDatabaseUsers(users)
		},
	}

	opts.register(cmd)

	return cmd
}

func fetchDatabaseUsers(cmd *cobra.Command, client atlas.Client, opts listFlags) ([]atlas.DatabaseUser, error) {
	ctx := cmd.Context()

	if opts.AllPages {
		iterator, err := client.DatabaseUsers().Iterate(ctx, opts.listOptions())
		if err != nil {
			return nil, err
		}

		return iterator.All()
	}

	page, err := client.DatabaseUsers().List(ctx, opts.listOptions())
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func outputDatabaseUsers(users []atlas.DatabaseUser) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(users)
	case OutputFormatYAML:
		return EncodeYAML(users)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Username", "Auth Database", "Roles")

		for _, user := range users {
			roles := make([]string, 0, len(user.Roles))
			for _, role := range user.Roles {
				roles = append(roles, role.RoleName+"@"+role.DatabaseName)
			}

			_ = table.Append(user.Username, user.DatabaseName, strings.Join(roles, ", "))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newDatabaseUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USERNAME",
		Short: "Show a single database user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.DatabaseUsers().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return EncodeYAML(user)
			default:
				return EncodeJSON(user)
			}
		},
	}
}

func newDatabaseUsersCreateCommand() *cobra.Command {
	var (
		password string
		roleName string
		database string
	)

	cmd := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create a database user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Print("Password: ")
				passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(passwordBytes)
				fmt.Println()
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &atlas.DatabaseUserRequest{
				Username:     args[0],
				Password:     password,
				DatabaseName: "admin",
				Roles: []atlas.DatabaseUserRole{{
					RoleName:     roleName,
					DatabaseName: database,
				}},
			}

			user, err := client.DatabaseUsers().Create(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Printf("Created database user %s\n", user.Username)

			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "user password (prompted when omitted)")
	cmd.Flags().StringVar(&roleName, "role", "readWrite", "role to grant")
	cmd.Flags().StringVar(&database, "database", "admin", "database the role applies to")

	return cmd
}

func newDatabaseUsersDeleteCommand() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete a database user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.DatabaseUsers().Delete(cmd.Context(), args[0], confirm); err != nil {
				return err
			}

			fmt.Printf("Deleted database user %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm the deletion")

	return cmd
}
