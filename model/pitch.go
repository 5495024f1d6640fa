package model

import (
	"fmt"
	"strconv"
)

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var pitchClassIndex = map[string]int{
	"C":  0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11,
}

// PitchName names a MIDI key with sharps, middle C (60) being C4.
func PitchName(key uint8) string {
	return fmt.Sprintf("%s%d", pitchClasses[key%12], int(key)/12-1)
}

// PitchKey is the inverse of PitchName; it also accepts flats.
func PitchKey(name string) (uint8, error) {
	split := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		split = 2
	}
	if len(name) <= split {
		return 0, &ValidationError{Track: -1, Field: "pitch", Value: name, Reason: "expected a note name and an octave"}
	}
	class, ok := pitchClassIndex[name[:split]]
	if !ok {
		return 0, &ValidationError{Track: -1, Field: "pitch", Value: name, Reason: "unknown note name"}
	}
	octave, err := strconv.Atoi(name[split:])
	if err != nil {
		return 0, &ValidationError{Track: -1, Field: "pitch", Value: name, Reason: "bad octave"}
	}
	key := (octave+1)*12 + class
	if key < 0 || key > 127 {
		return 0, &ValidationError{Track: -1, Field: "pitch", Value: name, Reason: "outside the MIDI range"}
	}
	return uint8(key), nil
}
