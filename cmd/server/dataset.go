package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/files"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Work with dataset files",
}

var datasetExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the built-in sample dataset to a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := files.NewCatalogStore(args[0])
		if err := store.Save(catalog.SampleDataset()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sample dataset written to %s\n", store.Path())
		return nil
	},
}

var datasetCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a dataset file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := files.NewCatalogStore(args[0]).Load()
		if err != nil {
			return err
		}
		c, err := catalog.New(ds)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d codes in %d categories\n", args[0], c.Len(), len(c.Categories()))
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetExportCmd, datasetCheckCmd)
}
