package cmd

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/notetoken/chunk"
	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/dataset"
	"github.com/jsphweid/notetoken/db"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type DatasetOptions struct {
	MaxNum       int
	WindowLength int
	Seed         int64
	ChunkSize    int
}

var datasetOpts DatasetOptions

func init() {
	datasetCmd.Flags().IntVar(&datasetOpts.WindowLength, "window", constants.DefaultWindowLength, "tokens per training window")
	datasetCmd.Flags().Int64Var(&datasetOpts.Seed, "seed", 0, "shuffle seed (picked from the clock when not given)")
	datasetCmd.Flags().IntVar(&datasetOpts.ChunkSize, "chunk-size", constants.PreferredChunkSize, "training pairs per chunk file")
	rootCmd.AddCommand(datasetCmd)
}

var datasetCmd = &cobra.Command{
	Use:   "dataset [maxNum]",
	Short: "Creates a training dataset",
	Long: `Recreates OUT_PATH with the tokens, vocabulary and shuffled training
pairs of the MIDI files under MEDIA_PATH. If DYNAMO_ENDPOINT is set the
snapshot is also recorded in DynamoDB.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxNum, err := parseMaxNum(args)
		if err != nil {
			return err
		}
		opts := datasetOpts
		opts.MaxNum = maxNum
		opts.Seed = datasetSeed(cmd, opts.Seed)
		_, err = BuildDataset(opts)
		return err
	},
}

// datasetSeed keeps an explicit --seed, including 0, and otherwise draws one
// from the clock.
func datasetSeed(cmd *cobra.Command, seed int64) int64 {
	if cmd.Flags().Changed("seed") {
		return seed
	}
	return time.Now().UnixNano()
}

// BuildDataset uses opts.Seed as given; the snapshot records it.
func BuildDataset(opts DatasetOptions) (model.Snapshot, error) {
	logger := log.WithFields(log.Fields{
		"function": "cmd.BuildDataset",
	})

	if err := util.RecreateOutputDir(); err != nil {
		return model.Snapshot{}, err
	}

	c, err := loadCorpus(opts.MaxNum)
	if err != nil {
		return model.Snapshot{}, err
	}
	d, err := dataset.Build(c.tracks, opts.WindowLength, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return model.Snapshot{}, err
	}

	if err := util.WriteJSON(util.OutPath(constants.TokensFilename), d.TokenStrings()); err != nil {
		return model.Snapshot{}, err
	}
	if err := d.Table.Save(util.OutPath(constants.VocabularyFilename)); err != nil {
		return model.Snapshot{}, err
	}
	chunks, err := chunk.CreateAll(constants.GetOutDir(), d.Inputs, d.Outputs, opts.ChunkSize)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := util.CreateBinary(util.OutPath(constants.AllChunksFilename), chunks); err != nil {
		return model.Snapshot{}, err
	}
	if err := c.save(); err != nil {
		return model.Snapshot{}, err
	}

	snap := model.Snapshot{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		NumFiles:     len(c.fileNumMap),
		NumTracks:    len(d.Tokens),
		NumTokens:    dataset.CountTokens(d.Tokens),
		VocabSize:    d.Table.Size(),
		WindowLength: opts.WindowLength,
		NumPairs:     len(d.Inputs),
		NumChunks:    len(chunks),
		Seed:         opts.Seed,
	}
	if err := util.WriteJSON(util.OutPath(constants.SnapshotFilename), snap); err != nil {
		return snap, err
	}
	logger.Infof("snapshot %v: %d pairs in %d chunks", snap.ID, snap.NumPairs, snap.NumChunks)

	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		store, err := db.Connect(endpoint, constants.GetDynamoTable())
		if err != nil {
			return snap, err
		}
		if err := store.Put(snap); err != nil {
			return snap, err
		}
		logger.Infof("recorded snapshot in %v", constants.GetDynamoTable())
	}
	return snap, nil
}
