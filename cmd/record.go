package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/notetoken/model"
	"github.com/jsphweid/notetoken/record"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	recordPort int
	recordIdle time.Duration
)

func init() {
	recordCmd.Flags().IntVar(&recordPort, "port", 0, "MIDI input port number")
	recordCmd.Flags().DurationVar(&recordIdle, "idle", 2*time.Second, "silence that ends a phrase")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Tokenizes live MIDI input",
	Long:  `Listens to a MIDI input port and prints the tokens of every phrase once playing pauses`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startRecording()
	},
}

func startRecording() error {
	logger := log.WithFields(log.Fields{
		"function": "cmd.startRecording",
	})

	defer midi.CloseDriver()
	in, err := midi.InPort(recordPort)
	if err != nil {
		return errors.Wrapf(err, "can't find MIDI input port %d", recordPort)
	}

	rec := record.New(time.Now)
	flush := func() {
		tokens, err := rec.Flush()
		if err != nil {
			logger.Errorf("Could not tokenize phrase: %v", err)
			return
		}
		if len(tokens) > 0 {
			fmt.Println(strings.Join(model.TokenStrings(tokens), " "))
		}
	}
	debounced := debounce.New(recordIdle)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			rec.NoteOn(key)
		case msg.GetNoteEnd(&ch, &key):
			rec.NoteOff(key)
		default:
			return
		}
		debounced(flush)
	})
	if err != nil {
		return errors.Wrapf(err, "could not listen to port %d", recordPort)
	}
	logger.Infof("Recording from %v, phrases end after %v of silence", in, recordIdle)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	stop()
	flush()
	return nil
}
