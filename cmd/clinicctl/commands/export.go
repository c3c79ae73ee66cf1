package commands

import (
	"encoding/json"

	"github.com/clinicfinder/backend/cmd/clinicctl/output"
	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all enquiries as CSV to the export bucket",
	Long: `Runs the enquiry export once, outside the server's schedule, and prints
a download link. Without a configured bucket the file only lives for the
duration of the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(true)
		if err != nil {
			return err
		}
		defer e.Close()

		if e.cfg.Storage.Bucket == "" {
			output.Warning("storage.bucket is not set; the export is kept in memory only")
		}

		res, err := e.services.Export.Run(commandContext(cmd))
		if err != nil {
			return err
		}
		return printExport(res)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func printExport(res *export.Result) error {
	if jsonOutput {
		return json.NewEncoder(output.Out).Encode(res)
	}
	output.Success("Exported %d enquiries to %s", res.Rows, res.Key)
	output.Info("Download: %s", res.URL)
	output.Muted("Link expires %s", res.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}
