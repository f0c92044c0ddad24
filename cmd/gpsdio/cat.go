package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio"
)

var catCmd = &cobra.Command{
	Use:   "cat [INPUT] [OUTPUT]",
	Short: "Copy messages between streams, optionally filtering and sorting",
	Long: `Copy messages from INPUT to OUTPUT, converting between drivers and
compressions as their names dictate. Both default to "-".

Filters are expr expressions over the message fields; a message is kept
only if every filter is true, and dropped if it lacks a field a filter
names. Sorting reads the whole input into memory and drops messages
without the sort field.

Examples:
  # Decompress and convert to MessagePack
  gpsdio cat positions.json.bz2 positions.msg

  # Fast vessels, by time
  gpsdio cat --filter 'type in [1, 2, 3]' --filter 'speed > 20' --sort timestamp day.json.gz fast.json

  # Read MessagePack from a pipe
  curl -s https://example.com/day.msg | gpsdio cat --driver MsgPack - day.json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCat,
}

var (
	catFilters           []string
	catSort              string
	catOutputDriver      string
	catOutputCompression string
	catAppend            bool
)

func init() {
	catCmd.Flags().StringArrayVarP(&catFilters, "filter", "f", nil, "keep messages for which the expression is true (repeatable)")
	catCmd.Flags().StringVarP(&catSort, "sort", "s", "", "sort messages by this field")
	catCmd.Flags().StringVar(&catOutputDriver, "output-driver", "", "output driver (default: detect from the name)")
	catCmd.Flags().StringVar(&catOutputCompression, "output-compression", "", "output compression, or \"none\" (default: detect from the name)")
	catCmd.Flags().BoolVarP(&catAppend, "append", "a", false, "append to OUTPUT instead of truncating it")
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	input, output := "-", "-"
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
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

	var pipeline gpsdio.Source = src
	if len(catFilters) > 0 {
		f, err := e.opener.Filter(pipeline, catFilters...)
		if err != nil {
			return err
		}
		pipeline = f
	}
	if catSort != "" {
		pipeline = e.opener.Sort(pipeline, catSort)
	}

	m := gpsdio.Write
	if catAppend {
		m = gpsdio.Append
	}
	dst, err := e.opener.Open(cmd.Context(), output, m, streamOptions(output, catOutputDriver, catOutputCompression)...)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}

	n, copyErr := copyMessages(cmd, dst, pipeline)
	if err := dst.Close(); err != nil && copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		return copyErr
	}

	st := src.Stats()
	e.logger.Info("copied messages",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int64("read", st.Read),
		zap.Int64("written", n),
		zap.Int64("skipped", st.Skipped),
	)
	return nil
}

// copyMessages is gpsdio.Copy, stopping early when the command is
// interrupted.
func copyMessages(cmd *cobra.Command, dst gpsdio.Sink, src gpsdio.Source) (int64, error) {
	ctx := cmd.Context()
	var n int64
	for msg, err := range gpsdio.Messages(src) {
		if err != nil {
			return n, err
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := dst.Write(msg); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
