package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types [TYPE]",
	Short: "Describe the message types and their fields",
	Long: `Without arguments, list every known message type. With a TYPE, list
the fields of that type with their units, defaults and descriptions.

Types and fields added by --schema extension files are included.

Examples:
  gpsdio types
  gpsdio types 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	sch := e.opener.Schema()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, t := range sch.Types() {
			desc, _ := sch.TypeDescription(t)
			fmt.Fprintf(out, "%3d  %s\n", t, desc)
		}
		return nil
	}

	t, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid type %q", args[0])
	}
	fields, ok := sch.Schema()[t]
	if !ok {
		return fmt.Errorf("unknown message type %d", t)
	}
	desc, _ := sch.TypeDescription(t)
	fmt.Fprintf(out, "Type %d: %s\n\n", t, desc)

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fd := fields[name]
		def := "-"
		if fd.HasDefault {
			def = fmt.Sprint(fd.Default)
		}
		fmt.Fprintf(out, "%-24s %-12s %-10s %s\n", name, fd.Units, def, fd.Description)
	}
	return nil
}
