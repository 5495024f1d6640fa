package util

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/notetoken/constants"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

func RecreateOutputDir() error {
	dir := constants.GetOutDir()
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, "could not clear %v", dir)
	}
	return errors.Wrapf(os.MkdirAll(dir, 0777), "could not create %v", dir)
}

func EnsureOutputDir() error {
	dir := constants.GetOutDir()
	return errors.Wrapf(os.MkdirAll(dir, 0777), "could not create %v", dir)
}

func OutPath(filename string) string {
	return filepath.Join(constants.GetOutDir(), filename)
}

// GatherAllMidiPaths returns every .mid/.midi file under path in lexical
// order. maxNum == 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, errors.Wrapf(err, "could not walk %v", path)
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Round rounds x to the given number of decimal places. Values too large to
// scale are already coarser than that and come back unchanged.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	if math.IsInf(x*p, 0) {
		return x
	}
	return math.Round(x*p) / p
}

func IsFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

func CreateBinary(filename string, data any) error {
	log.WithFields(log.Fields{"function": "util.CreateBinary"}).Debugf("Creating binary for filename: %v", filename)
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrapf(err, "could not encode %v", filename)
	}
	return errors.Wrapf(os.WriteFile(filename, buf.Bytes(), 0666), "write failed for file %v", filename)
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "could not load binary file")
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, errors.Wrapf(err, "could not decode binary file %v", path)
	}
	return data, nil
}

func WriteJSON(filename string, data any) error {
	log.WithFields(log.Fields{"function": "util.WriteJSON"}).Debugf("Writing json for filename: %v", filename)
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "could not marshal %v", filename)
	}
	return errors.Wrapf(os.WriteFile(filename, b, 0666), "write failed for file %v", filename)
}

func ReadJSON[A any](path string) (A, error) {
	var data A
	b, err := os.ReadFile(path)
	if err != nil {
		return data, errors.Wrap(err, "could not read json file")
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return data, errors.Wrapf(err, "could not decode json file %v", path)
	}
	return data, nil
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
