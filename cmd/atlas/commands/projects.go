package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "groups"},
		Short:   "Manage projects",
		Long:    "List, inspect, and create Atlas projects (groups)",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var opts listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			projects, err := fetchProjects(cmd, client, opts)
			if err != nil {
				return err
			}

			return outputProjects(projects)
		},
	}

	opts.register(cmd)

	return cmd
}

func fetchProjects(cmd *cobra.Command, client atlas.Client, opts listFlags) ([]atlas.Project, error) {
	ctx := cmd.Context()

	if opts.AllPages {
		iterator, err := client.Projects().Iterate(ctx, opts.listOptions())
		if err != nil {
			return nil, err
		}

		return iterator.All()
	}

	page, err := client.Projects().List(ctx, opts.listOptions())
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func outputProjects(projects []atlas.Project) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(projects)
	case OutputFormatYAML:
		return EncodeYAML(projects)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Clusters", "Created")

		for _, project := range projects {
			_ = table.Append(project.ID, project.Name, strconv.Itoa(project.ClusterCount), FormatTimePtr(project.Created))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get ID|NAME",
		Short: "Show a single project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var project *atlas.Project
			if byName {
				project, err = client.Projects().GetByName(cmd.Context(), args[0])
			} else {
				project, err = client.Projects().Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return EncodeYAML(project)
			default:
				return EncodeJSON(project)
			}
		},
	}

	cmd.Flags().BoolVar(&byName, "by-name", false, "look the project up by name instead of ID")

	return cmd
}

func newProjectsCreateCommand() *cobra.Command {
	var orgID string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Create(cmd.Context(), &atlas.ProjectCreateRequest{
				Name:  args[0],
				OrgID: orgID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", project.Name, project.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "organization ID the project belongs to")

	return cmd
}
