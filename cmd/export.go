package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/POPASMALINOIS/control-de-muelles/config"
	"github.com/POPASMALINOIS/control-de-muelles/core/stats"
	"github.com/POPASMALINOIS/control-de-muelles/infra/excel"
	"github.com/POPASMALINOIS/control-de-muelles/pkg/export"
)

var (
	exportDir string
	exportCSV string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the finalization history, one workbook per zone",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "output directory for zone workbooks")
	exportCmd.Flags().StringVar(&exportCSV, "csv", "", "also write the full history as CSV to this file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	history := engine.History()
	if len(history) == 0 {
		return fmt.Errorf("no finalized loads to export")
	}

	paths, err := excel.WriteHistory(exportDir, history, time.Now())
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}

	if exportCSV != "" {
		f, err := os.Create(exportCSV)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteCSV(f, history); err != nil {
			return err
		}
		fmt.Println(exportCSV)
	}

	if sum := stats.ArrivalDelays(history); sum.Count > 0 {
		fmt.Printf("arrivals: %d comparable, %d late, mean delay %.1f min, p90 %.1f min\n",
			sum.Count, sum.Late, sum.MeanDelay, sum.P90Delay)
	}
	return nil
}
