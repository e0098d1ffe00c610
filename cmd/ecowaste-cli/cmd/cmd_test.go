package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/notify"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
// and clears Changed, since rootCmd is shared by every test in the package.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "EcoWaste CLI v"+version+"\n", out)
}

func TestCheckPassword(t *testing.T) {
	t.Run("strong", func(t *testing.T) {
		out, err := run(t, "check-password", "Abcdef1!")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ One special character")
		assert.Contains(t, out, "Password accepted")
	})

	t.Run("weak", func(t *testing.T) {
		out, err := run(t, "check-password", "abcdefgh")
		require.Error(t, err)
		assert.Contains(t, out, "✗ One uppercase letter")
		assert.Contains(t, out, "✓ At least 8 characters")
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := run(t, "check-password", "Abcdef1!", "--confirm", "Abcdef1?")
		assert.EqualError(t, err, "passwords do not match")
	})

	t.Run("confirm does not leak into the next run", func(t *testing.T) {
		_, err := run(t, "check-password", "Abcdef1!", "--confirm", "Abcdef1?")
		require.Error(t, err)

		out, err := run(t, "check-password", "Green&Clean9")
		require.NoError(t, err)
		assert.Contains(t, out, "Password accepted")
	})
}

func TestRoutes(t *testing.T) {
	t.Setenv("SIMULATED_DELAY", "0s")

	out, err := run(t, "routes", "--format", "json")
	require.NoError(t, err)

	var routes []routeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &routes))
	assert.Contains(t, routes, routeInfo{Method: "POST", Path: "/auth/change-password"})
	assert.Contains(t, routes, routeInfo{Method: "GET", Path: "/health"})

	_, err = run(t, "routes", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestTopics(t *testing.T) {
	out, err := run(t, "topics")
	require.NoError(t, err)
	for _, topic := range domain.AuthTopics {
		assert.Contains(t, out, topic)
	}

	out, err = run(t, "topics", "--format", "json")
	require.NoError(t, err)
	var catalog []notify.EventInfo
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))
	assert.Len(t, catalog, len(domain.AuthTopics))
}
