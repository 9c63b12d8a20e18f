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

// NewClustersCommand creates the clusters command group.
func NewClustersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clusters",
		Aliases: []string{"cluster"},
		Short:   "Manage clusters",
		Long:    "List, inspect, create, modify, and delete the clusters of a project",
	}

	cmd.AddCommand(newClustersListCommand())
	cmd.AddCommand(newClustersGetCommand())
	cmd.AddCommand(newClustersCreateCommand())
	cmd.AddCommand(newClustersDeleteCommand())

	return cmd
}

func newClustersListCommand() *cobra.Command {
	var opts listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			clusters, err := fetchClusters(cmd, client, opts)
			if err != nil {
				return err
			}

			return outputClusters(clusters)
		},
	}

	opts.register(cmd)

	return cmd
}

func fetchClusters(cmd *cobra.Command, client atlas.Client, opts listFlags) ([]atlas.Cluster, error) {
	ctx := cmd.Context()

	if opts.AllPages {
		iterator, err := client.Clusters().Iterate(ctx, opts.listOptions())
		if err != nil {
			return nil, err
		}

		return iterator.All()
	}

	page, err := client.Clusters().List(ctx, opts.listOptions())
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

func outputClusters(clusters []atlas.Cluster) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(clusters)
	case OutputFormatYAML:
		return EncodeYAML(clusters)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "State", "Version", "Provider", "Region", "Size")

		for _, cluster := range clusters {
			var provider, region, size string
			if cluster.ProviderSettings != nil {
				provider = cluster.ProviderSettings.ProviderName
				region = cluster.ProviderSettings.RegionName
				size = cluster.ProviderSettings.InstanceSizeName
			}

			_ = table.Append(cluster.Name, cluster.StateName, cluster.MongoDBVersion, provider, region, size)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newClustersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a single cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			cluster, err := client.Clusters().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return EncodeJSON(cluster)
			case OutputFormatYAML:
				return EncodeYAML(cluster)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Name", cluster.Name)
				_ = table.Append("State", cluster.StateName)
				_ = table.Append("Type", cluster.ClusterType)
				_ = table.Append("Version", cluster.MongoDBVersion)
				_ = table.Append("Disk Size (GB)", strconv.FormatFloat(cluster.DiskSizeGB, 'f', -1, 64))
				_ = table.Append("Backup", strconv.FormatBool(cluster.BackupEnabled))
				_ = table.Append("Paused", strconv.FormatBool(cluster.Paused))
				_ = table.Append("SRV Address", cluster.SrvAddress)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newClustersCreateCommand() *cobra.Command {
	var (
		provider     string
		region       string
		instanceSize string
		diskSizeGB   float64
		majorVersion string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &atlas.ClusterCreateRequest{
				Name:                args[0],
				MongoDBMajorVersion: majorVersion,
				DiskSizeGB:          diskSizeGB,
				ProviderSettings: &atlas.ProviderSettings{
					ProviderName:     provider,
					RegionName:       region,
					InstanceSizeName: instanceSize,
				},
			}

			cluster, err := client.Clusters().Create(cmd.Context(), request)
			if err != nil {
				return err
			}

			fmt.Printf("Cluster %s is being created (state: %s)\n", cluster.Name, cluster.StateName)

			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "AWS", "cloud provider (AWS, GCP, AZURE)")
	cmd.Flags().StringVar(&region, "region", "US_EAST_1", "provider region")
	cmd.Flags().StringVar(&instanceSize, "instance-size", "M10", "instance size name")
	cmd.Flags().Float64Var(&diskSizeGB, "disk-size", 0, "disk size in GB")
	cmd.Flags().StringVar(&majorVersion, "mongodb-version", "", "MongoDB major version")

	return cmd
}

func newClustersDeleteCommand() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Clusters().Delete(cmd.Context(), args[0], confirm); err != nil {
				return err
			}

			fmt.Printf("Cluster %s is being deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm the deletion")

	return cmd
}
