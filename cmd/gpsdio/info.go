package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/SkyTruth/gpsdio"
	"github.com/SkyTruth/gpsdio/internal/gpserr"
	"github.com/SkyTruth/gpsdio/internal/schema"
)

var infoCmd = &cobra.Command{
	Use:   "info [INPUT]",
	Short: "Summarize the messages of a stream",
	Long: `Read INPUT (default "-") and report the number of messages, the count
per message type, distinct vessels, the time span and the bounding box of
the positions.

Records that fail to decode are counted rather than reported.

Examples:
  gpsdio info day.json.gz
  gpsdio info --json s3://bucket/ais/day.msg.zst`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

var infoJSON bool

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output the summary as JSON")
	rootCmd.AddCommand(infoCmd)
}

// summary describes a stream.
type summary struct {
	Messages  int64          `json:"messages"`
	Failures  int64          `json:"failures"`
	Types     map[int]int64  `json:"types"`
	Untyped   int64          `json:"untyped"`
	Vessels   int            `json:"vessels"`
	FirstTime *time.Time     `json:"first_timestamp,omitempty"`
	LastTime  *time.Time     `json:"last_timestamp,omitempty"`
	Bounds    *[4]float64    `json:"bounds,omitempty"` // min lon, min lat, max lon, max lat
	mmsis     map[string]struct{}
}

func newSummary() *summary {
	return &summary{
		Types: make(map[int]int64),
		mmsis: make(map[string]struct{}),
	}
}

func (s *summary) add(msg gpsdio.Message) {
	s.Messages++

	if t, ok := msg.Type(); ok {
		s.Types[t]++
	} else {
		s.Untyped++
	}

	if mmsi, ok := msg["mmsi"]; ok && mmsi != nil {
		s.mmsis[fmt.Sprint(mmsi)] = struct{}{}
		s.Vessels = len(s.mmsis)
	}

	if ts, ok := msg["timestamp"].(time.Time); ok {
		if s.FirstTime == nil || ts.Before(*s.FirstTime) {
			s.FirstTime = &ts
		}
		if s.LastTime == nil || ts.After(*s.LastTime) {
			s.LastTime = &ts
		}
	}

	lon, lonOK := msg["lon"].(float64)
	lat, latOK := msg["lat"].(float64)
	// 181 and 91 are the AIS "not available" values.
	if !lonOK || !latOK || lon > 180 || lat > 90 {
		return
	}
	if s.Bounds == nil {
		s.Bounds = &[4]float64{lon, lat, lon, lat}
		return
	}
	s.Bounds[0] = min(s.Bounds[0], lon)
	s.Bounds[1] = min(s.Bounds[1], lat)
	s.Bounds[2] = max(s.Bounds[2], lon)
	s.Bounds[3] = max(s.Bounds[3], lat)
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	sum := newSummary()
	for {
		msg, err := src.Next()
		if gpserr.IsCodec(err) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		sum.add(msg)
	}
	sum.Failures = src.Stats().Failures

	out := cmd.OutOrStdout()
	if infoJSON {
		data, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	printSummary(out, input, sum)
	return nil
}

func printSummary(w io.Writer, input string, s *summary) {
	fmt.Fprintf(w, "Input:     %s\n", input)
	fmt.Fprintf(w, "Messages:  %d\n", s.Messages)
	if s.Failures > 0 {
		fmt.Fprintf(w, "Failures:  %d\n", s.Failures)
	}
	fmt.Fprintf(w, "Vessels:   %d\n", s.Vessels)
	if s.FirstTime != nil {
		fmt.Fprintf(w, "First:     %s\n", schema.FormatTimestamp(*s.FirstTime))
		fmt.Fprintf(w, "Last:      %s\n", schema.FormatTimestamp(*s.LastTime))
	}
	if s.Bounds != nil {
		fmt.Fprintf(w, "Bounds:    %.5f, %.5f, %.5f, %.5f\n", s.Bounds[0], s.Bounds[1], s.Bounds[2], s.Bounds[3])
	}
	if len(s.Types) > 0 {
		fmt.Fprintln(w, "Types:")
		for _, t := range slices.Sorted(maps.Keys(s.Types)) {
			fmt.Fprintf(w, "  %3d  %d\n", t, s.Types[t])
		}
	}
	if s.Untyped > 0 {
		fmt.Fprintf(w, "Untyped:   %d\n", s.Untyped)
	}
}
