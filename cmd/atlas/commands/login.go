package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// loginConfig is the shape of the config file written by the login command.
type loginConfig struct {
	BaseURL    string `yaml:"base-url,omitempty"`
	PublicKey  string `yaml:"public-key"`
	PrivateKey string `yaml:"private-key"`
	Group      string `yaml:"group,omitempty"`
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		publicKey  string
		privateKey string
		groupID    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Atlas API credentials",
		Long:  "Verify an Atlas API key pair and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if publicKey == "" {
				publicKey = viper.GetString("public-key")
			}
			if publicKey == "" {
				fmt.Print("Public key: ")
				publicKey, _ = reader.ReadString('\n')
				publicKey = strings.TrimSpace(publicKey)
			}
			if publicKey == "" {
				return atlas.ErrPublicKeyRequired
			}

			if privateKey == "" {
				privateKey = viper.GetString("private-key")
			}
			if privateKey == "" {
				fmt.Print("Private key: ")
				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read private key: %w", err)
				}
				privateKey = strings.TrimSpace(string(keyBytes))
				fmt.Println()
			}
			if privateKey == "" {
				return atlas.ErrPrivateKeyRequired
			}

			if groupID == "" {
				groupID = viper.GetString("group")
			}
			if groupID == "" {
				fmt.Print("Project (group) ID: ")
				groupID, _ = reader.ReadString('\n')
				groupID = strings.TrimSpace(groupID)
			}
			if groupID == "" {
				return atlas.ErrGroupIDRequired
			}

			viper.Set("public-key", publicKey)
			viper.Set("private-key", privateKey)
			viper.Set("group", groupID)

			// Verify the credentials before persisting them. Listing
			// projects works with any valid key pair.
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if _, err := client.Projects().List(cmd.Context(), nil); err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			path, err := writeLoginConfig(loginConfig{
				BaseURL:    viper.GetString("base-url"),
				PublicKey:  publicKey,
				PrivateKey: privateKey,
				Group:      groupID,
			})
			if err != nil {
				return err
			}

			fmt.Println("Credentials saved to", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&publicKey, "public-key", "", "API public key")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "API private key")
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "project (group) ID")

	return cmd
}

func writeLoginConfig(config loginConfig) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".atlas")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")
	// The file carries a private key, keep it owner-only.
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return path, nil
}
