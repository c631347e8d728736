package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/POPASMALINOIS/control-de-muelles/config"
	"github.com/POPASMALINOIS/control-de-muelles/infra/excel"
)

var importCmd = &cobra.Command{
	Use:   "import <schedule.xlsx>",
	Short: "Import a schedule workbook into the yard",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	batch, err := excel.ReadBatch(args[0])
	if err != nil {
		return err
	}
	sum := engine.ImportBatch(batch)
	if err := saveEngine(cfg, engine); err != nil {
		return err
	}

	zone := "no zone"
	if batch.Zone != 0 {
		zone = fmt.Sprintf("zone %d", batch.Zone)
	}
	fmt.Printf("%s (%s): %d applied, %d conflicts, %d skipped\n",
		batch.Source, zone, sum.Applied, sum.Conflicts, sum.Skipped)
	return nil
}
