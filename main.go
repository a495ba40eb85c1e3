package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	setLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "star-badge",
		Short:        "Write the star badge to " + OUTPUT_PATH,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			sc, err := ComposeBadge(DefaultBadgeConfig())
			if err != nil {
				return err
			}
			return writeImage(sc, OUTPUT_PATH)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

// writeImage renders sc in memory and writes it to path in one call.
func writeImage(sc *Scene, path string) error {
	var buf bytes.Buffer
	if _, err := sc.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &StarError{Op: "write", Detail: path, Err: err}
	}
	logger().Info("image.written", "path", path, "bytes", buf.Len())
	return nil
}
