package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/proofai-labs/proofai/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// errUsage marks a bare or unrecognized invocation; help has already been
// printed, so Execute suppresses the error text and only sets the exit code.
var errUsage = errors.New("no command specified")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` packages agent, model, and dataset projects and uploads
them to the hub. It also scaffolds new resource projects with a ready-to-edit
metadata descriptor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errUsage
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if strings.HasPrefix(err.Error(), "unknown command") {
			_ = rootCmd.Help()
		}
	}
	return err
}
