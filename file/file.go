package file

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/notetoken/model"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// Describe labels a global track for logs and reports.
func Describe(m model.FileNumToMidiPath, sources []model.TrackSource, track int) string {
	if track < 0 || track >= len(sources) {
		return fmt.Sprintf("track %d", track)
	}
	src := sources[track]
	path, ok := m[src.FileNum]
	if !ok {
		return fmt.Sprintf("track %d (file #%d)", track, src.FileNum)
	}
	return fmt.Sprintf("track %d (%s #%d)", track, filepath.Base(path), src.TrackInFile)
}
