package cmd

import (
	"fmt"

	"github.com/jsphweid/notetoken/chunk"
	"github.com/jsphweid/notetoken/util"
	"github.com/spf13/cobra"
)

var inspectLimit int

func init() {
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 5, "pairs to print")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chunk>",
	Short: "Inspects a chunk",
	Long:  `Prints the header and the first pairs of a training chunk file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func argmax(v []float64) int {
	var best int
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func inspect(path string) error {
	header, data, err := chunk.Read(path)
	if err != nil {
		return err
	}
	fmt.Printf("pairs: %v\n", header.NumPairs)
	fmt.Printf("window length: %v\n", header.WindowLength)
	fmt.Printf("vocabulary size: %v\n", header.VocabSize)

	for i := 0; i < util.Min(inspectLimit, len(data.Inputs)); i++ {
		fmt.Printf("window: %v\n", data.Inputs[i])
		fmt.Printf("next: %v\n", argmax(data.Outputs[i]))
	}
	return nil
}
