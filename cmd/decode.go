package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/replay"
	"github.com/jsphweid/notetoken/sample"
	"github.com/jsphweid/notetoken/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	decodeTrack      int
	decodeClockStart float64
	decodePolicy     string
	decodeOut        string
	decodeBPM        float64
)

func init() {
	decodeCmd.Flags().IntVar(&decodeTrack, "track", 0, "which track of the tokens file to replay")
	decodeCmd.Flags().Float64Var(&decodeClockStart, "clock-start", 0, "time of the first token in seconds")
	decodeCmd.Flags().StringVar(&decodePolicy, "policy", "queue", "what a repeated start does: queue, overwrite or reject")
	decodeCmd.Flags().StringVar(&decodeOut, "out", "", "write a .mid file instead of printing events")
	decodeCmd.Flags().Float64Var(&decodeBPM, "bpm", 120, "tempo of the written .mid file")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [tokens.json]",
	Short: "Replays a token stream",
	Long:  `Replays one track of a tokens file (default OUT_PATH/tokens.json) into timed notes`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := util.OutPath(constants.TokensFilename)
		if len(args) == 1 {
			path = args[0]
		}
		return decode(path)
	},
}

func decode(path string) error {
	tracks, err := util.ReadJSON[[][]string](path)
	if err != nil {
		return err
	}
	if decodeTrack < 0 || decodeTrack >= len(tracks) {
		return errors.Errorf("%v has %d tracks, no track %d", path, len(tracks), decodeTrack)
	}
	if decodeOut != "" && decodeClockStart < 0 {
		return errors.Errorf("--clock-start %v is negative, a .mid file starts at 0", decodeClockStart)
	}
	policy, err := replay.ParsePolicy(decodePolicy)
	if err != nil {
		return err
	}

	events, err := replay.ReplayStrings(tracks[decodeTrack], decodeClockStart, replay.WithPolicy(policy))
	if err != nil {
		return err
	}

	if decodeOut != "" {
		if err := sample.WriteFile(decodeOut, events, decodeBPM); err != nil {
			return err
		}
		fmt.Printf("Wrote %d notes to %v\n", len(events), decodeOut)
		return nil
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(events)
}
