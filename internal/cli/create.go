package cli

import (
	"fmt"
	"strings"

	"github.com/proofai-labs/proofai/internal/branding"
	"github.com/proofai-labs/proofai/internal/metadata"
	"github.com/proofai-labs/proofai/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createAgentCmd)
	rootCmd.AddCommand(createModelCmd)
	rootCmd.AddCommand(createDatasetCmd)
}

var createAgentCmd = &cobra.Command{
	Use:   "create-agent <name>",
	Short: "Create a new agent project structure",
	Long: `Scaffold a new agent project: a directory named after the agent with a
metadata.json descriptor and a starter main.go that imports the ProofAI SDK.

Example:
  proofai create-agent "My Agent"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(metadata.KindAgent, args[0])
	},
}

var createModelCmd = &cobra.Command{
	Use:   "create-model <name>",
	Short: "Create a new model project structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(metadata.KindModel, args[0])
	},
}

var createDatasetCmd = &cobra.Command{
	Use:   "create-dataset <name>",
	Short: "Create a new dataset project structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(metadata.KindDataset, args[0])
	},
}

// runCreate scaffolds a project in the current directory and prints the
// created files and next steps.
func runCreate(kind metadata.Kind, name string) error {
	result, err := scaffold.Create(".", kind, name)
	if err != nil {
		return err
	}

	lower := strings.ToLower(string(kind))
	fmt.Printf("\nCreated %s project in '%s/' directory\n", lower, result.Dir)
	fmt.Printf("- metadata.json: Basic %s information\n", lower)
	if kind == metadata.KindAgent {
		fmt.Println("- main.go: Agent implementation file")
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", result.Dir)
	fmt.Printf("  2. Edit the files to implement your %s\n", lower)
	fmt.Printf("  3. Run '%s upload' to upload your project\n", branding.CLIName())
	return nil
}
