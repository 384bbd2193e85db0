package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pnlgo/pnl-budgeter/internal/config"
	"github.com/pnlgo/pnl-budgeter/internal/output"
)

func newCalcCmd() *cobra.Command {
	var formatName string
	var outFile bool

	cmd := &cobra.Command{
		Use:   "calc <scenarios.yaml>",
		Short: "Run the P&L calculation for every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := newEngine(logger)
			reports, err := engine.RunAll(cfg)
			if err != nil {
				return err
			}

			if formatName == "" {
				formatName = viper.GetString("format")
			}
			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)",
					formatName, output.AvailableFormatterNames())
			}

			if outFile {
				name, err := output.WriteFormatted(formatter, reports, formatter.Name())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", name)
				return nil
			}

			data, err := formatter.Format(reports)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "output format (console, json, csv, markdown)")
	cmd.Flags().BoolVarP(&outFile, "output-file", "o", false, "write to a timestamped file instead of stdout")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <file.yaml>",
		Short: "Write a Good/Better/Best starter scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", args[0])
			}
			if err := config.NewInputParser().WriteExampleFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
