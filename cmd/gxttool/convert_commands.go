package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gxttool/internal/convert"
)

type conversion func(src, dst string, opts convert.Options) (*convert.Result, error)

type convertFlags struct {
	platform platformFlag
	output   string
	force    bool
	backup   bool
	noLock   bool
}

func newPackCommand(ctx *commandContext) *cobra.Command {
	return newConvertCommand(ctx, convertKind{
		use:       "pack SOURCE [DESTINATION]",
		short:     "Build a GXT container from a TOML document",
		long:      "Build a GXT container from a TOML document. The destination is DESTINATION or --output, and defaults to SOURCE with a .gxt extension.",
		component: "pack",
		verb:      "Packed",
		run:       convert.Pack,
	})
}

func newUnpackCommand(ctx *commandContext) *cobra.Command {
	return newConvertCommand(ctx, convertKind{
		use:       "unpack SOURCE [DESTINATION]",
		short:     "Extract a GXT container into a TOML document",
		long:      "Extract a GXT container into a TOML document. The destination is DESTINATION or --output, and defaults to SOURCE with the configured document extension.",
		component: "unpack",
		verb:      "Unpacked",
		run:       convert.Unpack,
	})
}

type convertKind struct {
	use       string
	short     string
	long      string
	component string
	verb      string
	run       conversion
}

func newConvertCommand(ctx *commandContext, kind convertKind) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   kind.use,
		Short: kind.short,
		Long:  kind.long,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd, kind.component)
			if err != nil {
				return err
			}

			src := args[0]
			dst := flags.output
			if len(args) > 1 {
				if dst != "" {
					return fmt.Errorf("destination given twice: %s and --output %s", args[1], dst)
				}
				dst = args[1]
			}

			result, err := kind.run(src, dst, convert.Options{
				Platform:    flags.platform.resolve(cmd, cfg),
				Force:       flags.force || cfg.Output.Overwrite,
				Backup:      flags.backup || cfg.Output.Backup,
				Lock:        cfg.Output.Lock && !flags.noLock,
				Title:       cfg.DocumentTitle(filepath.Base(src)),
				DocumentExt: cfg.Document.Extension,
				Logger:      logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d %s (%s) into %s\n", kind.verb, result.Records, recordNoun(result.Records), result.Platform, result.Destination)
			if result.BackupPath != "" {
				fmt.Fprintf(out, "Previous file saved as %s\n", result.BackupPath)
			}
			return nil
		},
	}

	flags.platform.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Destination path (alternative to DESTINATION)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing destination")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "Keep the replaced destination as <destination>.bak")
	cmd.Flags().BoolVar(&flags.noLock, "no-lock", false, "Do not take the <destination>.lock file lock")
	return cmd
}

func recordNoun(n int) string {
	if n == 1 {
		return "record"
	}
	return "records"
}
