package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SkyTruth/gpsdio"
	"github.com/SkyTruth/gpsdio/internal/driver/jsonldriver"
)

var headCmd = &cobra.Command{
	Use:   "head [INPUT]",
	Short: "Print the first messages of a stream as JSON",
	Long: `Print the first messages of INPUT (default "-") to standard output as
newline delimited JSON with sorted keys.

Examples:
  gpsdio head -n 5 day.msg.gz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHead,
}

var headCount int

func init() {
	headCmd.Flags().IntVarP(&headCount, "count", "n", 10, "number of messages to print")
	rootCmd.AddCommand(headCmd)
}

func runHead(cmd *cobra.Command, args []string) error {
	input := "-"
	if len(args) > 0 {
		input = args[0]
	}

	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	src, err := e.openInput(cmd, input)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := e.opener.Open(cmd.Context(), "-", gpsdio.Write,
		gpsdio.WithDriver(jsonldriver.Name),
		gpsdio.WithCompression(gpsdio.NoCompression),
		gpsdio.WithCodecOptions(gpsdio.CodecOptions{"sort_keys": true}),
	)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	if err := copyN(src, dst, headCount); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// copyN writes at most n messages of src to dst.
func copyN(src gpsdio.Source, dst gpsdio.Sink, n int) error {
	if n <= 0 {
		return nil
	}
	printed := 0
	for msg, err := range gpsdio.Messages(src) {
		if err != nil {
			return err
		}
		if err := dst.Write(msg); err != nil {
			return err
		}
		if printed++; printed == n {
			break
		}
	}
	return nil
}
