package commands

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
	"github.com/atlasops-io/atlas-client/pkg/atlasclient"
)

// Output format names accepted by the --output flag.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

const yamlIndentSize = 2

// CreateClient builds an Atlas client from the active configuration.
func CreateClient() (atlas.Client, error) {
	config := &atlas.Config{
		BaseURL:    viper.GetString("base-url"),
		PublicKey:  viper.GetString("public-key"),
		PrivateKey: viper.GetString("private-key"),
		GroupID:    viper.GetString("group"),
		Debug:      viper.GetBool("verbose"),
	}

	return atlasclient.New(config)
}

// EncodeJSON writes v to stdout as indented JSON.
func EncodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// EncodeYAML writes v to stdout as YAML.
func EncodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(yamlIndentSize)

	return encoder.Encode(v)
}

// listFlags holds the pagination flags shared by the list subcommands.
type listFlags struct {
	AllPages     bool
	Page         int
	ItemsPerPage int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&f.Page, "page", atlas.DefaultPageNum, "page number to fetch")
	cmd.Flags().IntVar(&f.ItemsPerPage, "items-per-page", atlas.DefaultItemsPerPage, "results per page")
}

func (f *listFlags) listOptions() *atlas.ListOptions {
	return &atlas.ListOptions{
		PageNum:      f.Page,
		ItemsPerPage: f.ItemsPerPage,
	}
}

// FormatTimePtr renders an optional timestamp for table output.
func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("2006-01-02 15:04:05")
}
