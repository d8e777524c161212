package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/soc-dashboard/config"
	"github.com/benedict-erwin/soc-dashboard/internal/services/dashboard"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List analytical queries and their charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		regs, err := dashboard.GetRegistrations()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"Key", "Name", "Columns", "Charts"})
		for _, reg := range regs {
			table.Append([]string{
				reg.Config.Key,
				reg.Config.Name,
				strings.Join(reg.Config.Columns, ", "),
				strings.Join(reg.Config.Charts, "\n"),
			})
		}
		table.Render()

		fmt.Printf("\nOutput directory: %s\n", config.Get().Output.Dir)
		return nil
	},
}
