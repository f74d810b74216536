package cli

import (
	"fmt"
	"os"

	"github.com/proofai-labs/proofai/internal/archive"
	"github.com/proofai-labs/proofai/internal/config"
	"github.com/proofai-labs/proofai/internal/hub"
	"github.com/proofai-labs/proofai/internal/metadata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Package the current directory and upload it to the hub",
	Long: `Validate the metadata.json descriptor in the current directory, zip the
project (skipping hidden files and build artifacts), and upload the archive
to the hub endpoint for the resource type. The archive is removed after the
attempt whether or not it succeeds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := metadata.Validate(".")
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		kind := result.Metadata.Kind()
		fmt.Printf("Detected resource type: %s\n", kind)

		archivePath, err := archive.Create(".", archive.DefaultName)
		if err != nil {
			return err
		}
		fmt.Printf("Created archive: %s\n", archivePath)

		config.Load()
		client := hub.NewClient(config.HubURL())
		uploadRes, err := client.Upload(kind, archivePath)
		if err != nil {
			return err
		}

		fmt.Printf("Success! %s upload completed.\n", kind)
		fmt.Printf("Resource ID: %s\n", uploadRes.ResourceID)
		fmt.Printf("Job ID: %s\n", uploadRes.JobID)
		return nil
	},
}
