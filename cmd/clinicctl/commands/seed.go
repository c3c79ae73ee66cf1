package commands

import (
	"encoding/json"

	"github.com/clinicfinder/backend/cmd/clinicctl/output"
	"github.com/clinicfinder/backend/internal/application/seed"
	"github.com/spf13/cobra"
)

var seedYes bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with the demo dataset",
	Long: `Deletes every concern, treatment, mapping and package, then inserts the demo
catalog. Enquiries are kept. The reset is not atomic.

Examples:
  clinicctl seed --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !seedYes {
			output.Warning("seed deletes the whole catalog; rerun with --yes to confirm")
			return nil
		}

		e, err := openEnv(false)
		if err != nil {
			return err
		}
		defer e.Close()

		counts, err := e.services.Seed.Seed(commandContext(cmd))
		if err != nil {
			return err
		}
		return printSeedCounts(counts)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVarP(&seedYes, "yes", "y", false, "Confirm the destructive reset")
}

func printSeedCounts(counts *seed.Counts) error {
	if jsonOutput {
		return json.NewEncoder(output.Out).Encode(counts)
	}
	output.Success(seed.SuccessMessage)
	output.Table(
		[]string{"CONCERNS", "TREATMENTS", "MAPPINGS", "PACKAGES"},
		[][]string{{itoa(counts.Concerns), itoa(counts.Treatments), itoa(counts.Mappings), itoa(counts.Packages)}},
	)
	return nil
}
