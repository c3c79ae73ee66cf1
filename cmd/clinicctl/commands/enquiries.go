package commands

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/clinicfinder/backend/cmd/clinicctl/output"
	enquiryapp "github.com/clinicfinder/backend/internal/application/enquiry"
	"github.com/spf13/cobra"
)

var enquiriesCmd = &cobra.Command{
	Use:   "enquiries",
	Short: "List enquiries with their packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(false)
		if err != nil {
			return err
		}
		defer e.Close()

		items, err := e.services.Enquiry.List(commandContext(cmd))
		if err != nil {
			return err
		}
		return printEnquiries(items)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <concern>",
	Short: "Resolve a concern the way GET /api/search does",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(false)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.services.Resolution.Resolve(commandContext(cmd), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return json.NewEncoder(output.Out).Encode(result)
		}
		if result.Concern == nil {
			output.Warning("no concern named %q", args[0])
			return nil
		}

		output.Section(result.Concern.Name)
		for _, t := range result.Treatments {
			output.Muted("  %s", t.Name)
		}
		rows := make([][]string, 0, len(result.Packages))
		for _, p := range result.Packages {
			treatment := ""
			if p.Treatment != nil {
				treatment = p.Treatment.Name
			}
			rows = append(rows, []string{p.ClinicName, p.PackageName, treatment, strconv.FormatFloat(p.Price, 'f', -1, 64)})
		}
		output.Table([]string{"CLINIC", "PACKAGE", "TREATMENT", "PRICE"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enquiriesCmd, searchCmd)
}

func printEnquiries(items []enquiryapp.EnquiryListItem) error {
	if jsonOutput {
		if items == nil {
			items = []enquiryapp.EnquiryListItem{}
		}
		return json.NewEncoder(output.Out).Encode(items)
	}
	if len(items) == 0 {
		output.Info("No enquiries")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		pkg := "-"
		if it.Package != nil {
			pkg = it.Package.ClinicName + " / " + it.Package.PackageName
		}
		rows = append(rows, []string{
			it.CreatedAt.Local().Format(time.DateTime),
			it.UserName,
			it.UserEmail,
			pkg,
		})
	}
	output.Table([]string{"CREATED", "NAME", "EMAIL", "PACKAGE"}, rows)
	output.Muted("%d enquiries", len(items))
	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }
