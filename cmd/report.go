package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/notetoken/chunk"
	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/file"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
	"github.com/jsphweid/notetoken/vocab"
	"github.com/jsphweid/notetoken/window"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Reports on the tokens, vocabulary and chunks in OUT_PATH`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report()
	},
}

type tokensReport struct {
	numTracks    int
	numTokens    int
	longestTrack int
	trackLengths []int
	vocabSize    int
}

type chunksReport struct {
	numFiles     int64
	numPairs     int64
	totalBytes   int64
	windowLength uint32
}

func analyzeTokens() (tokensReport, error) {
	var report tokensReport
	tracks, err := util.ReadJSON[[][]string](util.OutPath(constants.TokensFilename))
	if err != nil {
		return report, err
	}
	table, err := vocab.Load(util.OutPath(constants.VocabularyFilename))
	if err != nil {
		return report, err
	}

	report.numTracks = len(tracks)
	report.vocabSize = table.Size()
	for _, track := range tracks {
		report.numTokens += len(track)
		report.trackLengths = append(report.trackLengths, len(track))
		report.longestTrack = util.Max(report.longestTrack, len(track))
	}
	return report, nil
}

func analyzeChunks() (chunksReport, error) {
	var report chunksReport
	chunks, err := util.ReadBinary[[]model.ChunkOverview](util.OutPath(constants.AllChunksFilename))
	if err != nil {
		return report, err
	}

	for _, c := range chunks {
		report.numFiles += 1
		f, err := os.Open(filepath.Join(constants.GetOutDir(), c.Filename))
		if err != nil {
			return report, err
		}
		header, err := chunk.ReadHeader(f)
		if err != nil {
			f.Close()
			return report, err
		}
		stats, err := f.Stat()
		f.Close()
		if err != nil {
			return report, err
		}
		report.numPairs += int64(header.NumPairs)
		report.totalBytes += stats.Size()
		report.windowLength = header.WindowLength
	}
	return report, nil
}

func report() error {
	tokensReport, err := analyzeTokens()
	if err != nil {
		return err
	}
	fmt.Printf("tokensReport.numTracks: %v\n", tokensReport.numTracks)
	fmt.Printf("tokensReport.numTokens: %v\n", tokensReport.numTokens)
	fmt.Printf("tokensReport.longestTrack: %v\n", tokensReport.longestTrack)
	fmt.Printf("tokensReport.vocabSize: %v\n", tokensReport.vocabSize)

	fileNumMap, errFiles := util.ReadBinary[model.FileNumToMidiPath](util.OutPath(constants.FileNumMapFilename))
	sources, errSources := util.ReadBinary[[]model.TrackSource](util.OutPath(constants.TrackSourcesFilename))
	if errFiles == nil && errSources == nil {
		for i, n := range tokensReport.trackLengths {
			fmt.Printf("%v: %v tokens\n", file.Describe(fileNumMap, sources, i), n)
		}
	}

	// only the dataset command writes chunks
	if _, err := os.Stat(util.OutPath(constants.AllChunksFilename)); os.IsNotExist(err) {
		return nil
	}
	chunksReport, err := analyzeChunks()
	if err != nil {
		return err
	}
	fmt.Printf("chunksReport.numFiles: %v\n", chunksReport.numFiles)
	fmt.Printf("chunksReport.numPairs: %v\n", chunksReport.numPairs)
	fmt.Printf("chunksReport.totalBytes: %v\n", chunksReport.totalBytes)

	var expected int
	for _, n := range tokensReport.trackLengths {
		expected += window.PairCount(n, int(chunksReport.windowLength))
	}
	fmt.Printf("expected pairs from track lengths (should equal numPairs): %v\n", expected)
	return nil
}
