package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gxttool/internal/gxt"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"

	previewRunes = 40
)

type inspectEntry struct {
	gxt.Entry
	String string `json:"string"`
}

type inspectOutput struct {
	File     string         `json:"file"`
	Platform gxt.Platform   `json:"platform"`
	TKEYSize uint32         `json:"tkey_size"`
	TDATSize uint32         `json:"tdat_size"`
	Entries  []inspectEntry `json:"entries"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var platform platformFlag
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the key table of a GXT container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			layout, err := gxt.Inspect(data, platform.resolve(cmd, cfg))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			view := inspectOutput{
				File:     path,
				Platform: layout.Platform,
				TKEYSize: layout.TKEYSize,
				TDATSize: layout.TDATSize,
				Entries:  make([]inspectEntry, len(layout.Entries)),
			}
			for i, entry := range layout.Entries {
				view.Entries[i] = inspectEntry{Entry: entry, String: layout.Records[i].String}
			}

			if jsonOutput {
				return writeJSON(cmd, view)
			}
			renderInspect(cmd.OutOrStdout(), view)
			return nil
		},
	}

	platform.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderInspect(out io.Writer, view inspectOutput) {
	heading := fmt.Sprintf("%s: %s, %d %s, TKEY %d bytes, TDAT %d bytes",
		view.File, view.Platform, len(view.Entries),
		recordNoun(len(view.Entries)),
		view.TKEYSize, view.TDATSize)
	if shouldColorize(out) {
		heading = ansiBlue + heading + ansiReset
	}
	fmt.Fprintln(out, heading)
	if len(view.Entries) == 0 {
		return
	}

	rows := make([][]string, 0, len(view.Entries))
	for i, entry := range view.Entries {
		rows = append(rows, []string{
			strconv.Itoa(i),
			entry.Name,
			strconv.FormatUint(uint64(entry.Offset), 10),
			strconv.Itoa(entry.Size),
			strconv.FormatUint(uint64(entry.Duration), 10),
			preview(entry.String),
		})
	}
	fmt.Fprintln(out, renderTable([]column{
		{title: "#", right: true},
		{title: "Name"},
		{title: "Offset", right: true},
		{title: "Bytes", right: true},
		{title: "Duration", right: true},
		{title: "Text"},
	}, rows))
}

func preview(s string) string {
	s = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(s)
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}
	return string(runes[:previewRunes-1]) + "…"
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
