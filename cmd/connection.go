package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/soc-dashboard/internal/services/connection"
	"github.com/benedict-erwin/soc-dashboard/pkg/database"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

var testConnectionCmd = &cobra.Command{
	Use:   "test-connection",
	Short: "Test the database connection",
	Long:  `Connect to the SOC database, print server version and list its tables`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbCfg := database.GetConfig()

		fmt.Printf("Database Connection Test\n")
		fmt.Printf("========================\n")
		fmt.Printf("Host: %s\n", dbCfg.Address())
		fmt.Printf("User: %s\n\n", dbCfg.User)

		status := connection.Check(context.Background(), func(ctx context.Context) (*database.Session, error) {
			return database.Connect(ctx, dbCfg)
		})

		if status.Status != connection.StatusHealthy {
			fmt.Printf("❌ Connection failed: %s\n", status.Error)
			return fmt.Errorf("connection test failed: %s", status.Error)
		}

		fmt.Printf("✅ Connected to %s (MySQL %s) in %s, queries took %s\n", status.Database, status.Version, status.ResponseTime, status.QueryTime)
		fmt.Printf("Checked at: %s\n\n", utils.FormatTime(status.LastCheck))

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"#", "Table"})
		for i, name := range status.Tables {
			table.Append([]string{strconv.Itoa(i + 1), name})
		}
		table.Render()

		fmt.Printf("\nTables: %d\n", len(status.Tables))
		return nil
	},
}
