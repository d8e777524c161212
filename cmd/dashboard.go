package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/benedict-erwin/soc-dashboard/config"
	"github.com/benedict-erwin/soc-dashboard/internal/services/dashboard"
	"github.com/benedict-erwin/soc-dashboard/pkg/charts"
	"github.com/benedict-erwin/soc-dashboard/pkg/database"
	"github.com/benedict-erwin/soc-dashboard/pkg/system"
	"github.com/benedict-erwin/soc-dashboard/pkg/utils"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run all queries and render charts",
	Long:  `Connect to the SOC database, run Q1, Q2, Q3 and Q5 and write their charts to the output directory`,
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	regs, err := dashboard.GetRegistrations()
	if err != nil {
		return fmt.Errorf("invalid query registry: %w", err)
	}

	dbCfg := database.GetConfig()
	printBanner(dbCfg, cfg.Output.Dir)

	open := func(ctx context.Context) (dashboard.Session, error) {
		session, err := database.Connect(ctx, dbCfg)
		if err != nil {
			return nil, err
		}
		return session, nil
	}
	renderer := charts.NewRenderer(cfg.Output.Dir, cfg.Output.Width, cfg.Output.Height)

	summary, err := dashboard.Run(context.Background(), open, renderer, regs)
	if err != nil {
		return fmt.Errorf("dashboard aborted: %w", err)
	}

	printSummary(summary)
	return nil
}

func printBanner(dbCfg database.Config, outputDir string) {
	fmt.Printf("SOC Analytics Dashboard\n")
	fmt.Printf("=======================\n")
	fmt.Printf("Database: %s@%s/%s\n", dbCfg.User, dbCfg.Address(), dbCfg.Name)
	fmt.Printf("Output:   %s\n", outputDir)
	fmt.Printf("Started:  %s\n\n", utils.FormatTime(utils.Now()))
}

func printSummary(summary *dashboard.Summary) {
	fmt.Printf("\nGenerated Charts\n")
	fmt.Printf("================\n")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Query", "Rows", "Chart", "Size", "Status"})

	for _, res := range summary.Results {
		label := res.Key + " " + res.Name
		if !res.OK() {
			table.Append([]string{label, "-", "-", "-", "❌ " + res.Err.Error()})
			continue
		}
		if len(res.Charts) == 0 && len(res.Skipped) == 0 {
			table.Append([]string{label, strconv.Itoa(res.Rows), "-", "-", "No data"})
			continue
		}
		for _, path := range res.Charts {
			size := "N/A"
			if info, err := os.Stat(path); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			}
			table.Append([]string{label, strconv.Itoa(res.Rows), filepath.Base(path), size, "✅"})
		}
		for _, file := range res.Skipped {
			table.Append([]string{label, strconv.Itoa(res.Rows), file, "-", "Skipped"})
		}
	}
	table.Render()

	fmt.Printf("\nCharts written: %d\n", summary.ChartCount())
	fmt.Printf("Output directory: %s\n", summary.OutputDir)
	if failed := summary.Failed(); len(failed) > 0 {
		keys := make([]string, 0, len(failed))
		for _, res := range failed {
			keys = append(keys, res.Key)
		}
		fmt.Printf("Failed queries: %s\n", strings.Join(keys, ", "))
	}
	metrics := system.GetRunMetrics(summary.OutputDir)
	fmt.Printf("Output volume: %.1f%% used, %s free\n", metrics.DiskUsage, metrics.DiskFree)
	fmt.Printf("Memory: %s allocated, %s heap in use, %s total, %s from system, %d GC cycles\n",
		metrics.AppMemory.CurrentAlloc, metrics.AppMemory.HeapInuse, metrics.AppMemory.TotalAlloc,
		metrics.AppMemory.SystemMem, metrics.AppMemory.GCCycles)
	fmt.Printf("Goroutines: %d\n", metrics.GoroutineCount)
	fmt.Printf("Elapsed: %s\n", summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
	fmt.Printf("Database connection closed.\n")
}
