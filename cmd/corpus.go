package cmd

import (
	"strconv"

	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/file"
	"github.com/jsphweid/notetoken/midi"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
	"github.com/pkg/errors"
)

type corpus struct {
	fileNumMap model.FileNumToMidiPath
	tracks     [][]model.NoteEvent
	sources    []model.TrackSource
}

func parseMaxNum(args []string) (int, error) {
	if len(args) != 1 {
		return 0, nil
	}
	maxNum, err := strconv.Atoi(args[0])
	return maxNum, errors.Wrapf(err, "expected a number of files, got %q", args[0])
}

// loadCorpus reads up to maxNum MIDI files from the media dir.
func loadCorpus(maxNum int) (corpus, error) {
	paths, err := util.GatherAllMidiPaths(constants.GetMediaDir(), maxNum)
	if err != nil {
		return corpus{}, err
	}
	tracks, sources := midi.LoadTracks(paths)
	return corpus{
		fileNumMap: file.CreateFileNumMap(paths),
		tracks:     tracks,
		sources:    sources,
	}, nil
}

func (c corpus) save() error {
	if err := util.CreateBinary(util.OutPath(constants.FileNumMapFilename), c.fileNumMap); err != nil {
		return err
	}
	return util.CreateBinary(util.OutPath(constants.TrackSourcesFilename), c.sources)
}
