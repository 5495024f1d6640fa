package chunk

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/notetoken/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Header is the fixed-size prefix of every chunk file.
type Header struct {
	NumPairs     uint32
	WindowLength uint32
	VocabSize    uint32
}

func makeChunkOverview(start, end int) model.ChunkOverview {
	var c model.ChunkOverview
	c.Filename = uuid.New().String() + ".dat"
	c.Start = start
	c.End = end
	return c
}

func makeHeader(data model.ChunkData) Header {
	h := Header{NumPairs: uint32(len(data.Inputs))}
	if len(data.Inputs) > 0 {
		h.WindowLength = uint32(len(data.Inputs[0]))
		h.VocabSize = uint32(len(data.Outputs[0]))
	}
	return h
}

func makeChunk(dir string, c model.ChunkOverview, data model.ChunkData) error {
	// header first so a reader can skip the body
	var finalBytes bytes.Buffer
	if err := binary.Write(&finalBytes, binary.LittleEndian, makeHeader(data)); err != nil {
		return errors.Wrap(err, "could not write chunk header")
	}
	encoder := gob.NewEncoder(&finalBytes)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "error making chunk, couldn't encode pairs")
	}

	filename := filepath.Join(dir, c.Filename)
	return errors.Wrap(os.WriteFile(filename, finalBytes.Bytes(), 0666), "write failed for chunk file")
}

// CreateAll splits the training pairs into files of at most chunkSize
// pairs each and returns their overviews in pair order.
func CreateAll(dir string, inputs, outputs [][]float64, chunkSize int) ([]model.ChunkOverview, error) {
	logger := log.WithFields(log.Fields{
		"function": "chunk.CreateAll",
	})
	if len(inputs) != len(outputs) {
		return nil, errors.Errorf("have %d inputs but %d outputs", len(inputs), len(outputs))
	}
	if chunkSize < 1 {
		return nil, errors.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	var res []model.ChunkOverview
	for start := 0; start < len(inputs); start += chunkSize {
		end := start + chunkSize
		if end > len(inputs) {
			end = len(inputs)
		}
		logger.Debugf("Writing pairs %v to %v of %v", start, end, len(inputs))
		c := makeChunkOverview(start, end)
		data := model.ChunkData{Inputs: inputs[start:end], Outputs: outputs[start:end]}
		if err := makeChunk(dir, c, data); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	err := binary.Read(r, binary.LittleEndian, &h)
	return h, errors.Wrap(err, "could not read chunk header")
}

func Read(path string) (Header, model.ChunkData, error) {
	var data model.ChunkData
	f, err := os.Open(path)
	if err != nil {
		return Header{}, data, errors.Wrap(err, "could not open chunk")
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return h, data, err
	}
	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return h, data, errors.Wrapf(err, "could not decode chunk %v", path)
	}
	return h, data, nil
}

// ReadAll loads every chunk back into the two parallel arrays.
func ReadAll(dir string, chunks []model.ChunkOverview) ([][]float64, [][]float64, error) {
	var inputs, outputs [][]float64
	for _, c := range chunks {
		_, data, err := Read(filepath.Join(dir, c.Filename))
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, data.Inputs...)
		outputs = append(outputs, data.Outputs...)
	}
	return inputs, outputs, nil
}
