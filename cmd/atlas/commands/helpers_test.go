package commands

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

func TestFormatTimePtr(t *testing.T) {
	assert.Equal(t, "", FormatTimePtr(nil))

	ts := time.Date(2026, 8, 26, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-26 09:15:00", FormatTimePtr(&ts))
}

func TestListFlags(t *testing.T) {
	var flags listFlags

	cmd := &cobra.Command{Use: "list"}
	flags.register(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--page", "3", "--items-per-page", "25", "--all"}))

	assert.True(t, flags.AllPages)
	assert.Equal(t, &atlas.ListOptions{PageNum: 3, ItemsPerPage: 25}, flags.listOptions())
}

func TestListFlags_Defaults(t *testing.T) {
	var flags listFlags

	cmd := &cobra.Command{Use: "list"}
	flags.register(cmd)

	require.NoError(t, cmd.ParseFlags(nil))

	assert.False(t, flags.AllPages)
	assert.Equal(t, &atlas.ListOptions{PageNum: atlas.DefaultPageNum, ItemsPerPage: atlas.DefaultItemsPerPage}, flags.listOptions())
}
