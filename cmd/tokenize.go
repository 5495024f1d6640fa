package cmd

import (
	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/dataset"
	"github.com/jsphweid/notetoken/util"
	"github.com/jsphweid/notetoken/vocab"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [maxNum]",
	Short: "Tokenizes MIDI files",
	Long:  `Tokenizes the MIDI files under MEDIA_PATH into tokens.json and vocabulary.json in OUT_PATH`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxNum, err := parseMaxNum(args)
		if err != nil {
			return err
		}
		return Tokenize(maxNum)
	},
}

func Tokenize(maxNum int) error {
	logger := log.WithFields(log.Fields{
		"function": "cmd.Tokenize",
	})

	if err := util.EnsureOutputDir(); err != nil {
		return err
	}
	c, err := loadCorpus(maxNum)
	if err != nil {
		return err
	}
	tokens, err := dataset.Tokenize(c.tracks)
	if err != nil {
		return err
	}
	table := vocab.Build(tokens)
	logger.Infof("%d tracks, %d tokens, vocabulary of %d", len(tokens), dataset.CountTokens(tokens), table.Size())

	if err := util.WriteJSON(util.OutPath(constants.TokensFilename), dataset.TokensToStrings(tokens)); err != nil {
		return err
	}
	if err := table.Save(util.OutPath(constants.VocabularyFilename)); err != nil {
		return err
	}
	return c.save()
}
