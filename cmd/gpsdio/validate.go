package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

var validateCmd = &cobra.Command{
	Use:   "validate [INPUT]",
	Short: "Check messages against the schema",
	Long: `Check every message of INPUT (default "-") against the schema:

- the message has an integer type known to the schema
- every field belongs to that type
- every value passes its field's validator

Each problem is printed with the record number. The command fails if any
problem, including an undecodable record, is found.

Examples:
  gpsdio validate day.json.gz
  gpsdio validate --schema fleet.yaml --max-issues 20 day.msg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var maxIssues int

// errInvalid is returned when problems were found, after they are printed.
var errInvalid = errors.New("validation failed")

func init() {
	validateCmd.Flags().IntVar(&maxIssues, "max-issues", 0, "stop after this many problems (0 = no limit)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	sch := e.opener.Schema()
	out := cmd.OutOrStdout()

	var record, problems int
	for {
		msg, err := src.Next()
		if errors.Is(err, io.EOF) && !gpserr.IsCodec(err) {
			break
		}
		record++
		switch {
		case gpserr.IsCodec(err):
			fmt.Fprintf(out, "record %d: %v\n", record, err)
			problems++
		case err != nil:
			return err
		default:
			for _, issue := range sch.Validate(msg) {
				fmt.Fprintf(out, "record %d: %s\n", record, issue)
				problems++
			}
		}
		if maxIssues > 0 && problems >= maxIssues {
			break
		}
	}

	if problems > 0 {
		fmt.Fprintf(out, "%d problems in %d records\n", problems, record)
		return errInvalid
	}
	fmt.Fprintf(out, "%d records OK\n", record)
	return nil
}
