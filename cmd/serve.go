package cmd

import (
	"net/http"
	"os"

	"github.com/jsphweid/notetoken/api"
	"github.com/jsphweid/notetoken/constants"
	"github.com/jsphweid/notetoken/util"
	"github.com/jsphweid/notetoken/vocab"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves POST /encode, POST /decode and GET /vocabulary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := LoadServeFiles()
		if err != nil {
			return err
		}
		log.Infof("Listening on %v", serveAddr)
		return http.ListenAndServe(serveAddr, server.Router())
	},
}

// LoadServeFiles builds the server around the vocabulary in OUT_PATH, if
// there is one.
func LoadServeFiles() (*api.Server, error) {
	path := util.OutPath(constants.VocabularyFilename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Warnf("No vocabulary at %v, GET /vocabulary will 404", path)
		return api.New(nil), nil
	}
	table, err := vocab.Load(path)
	if err != nil {
		return nil, err
	}
	return api.New(table), nil
}
