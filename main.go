package main

import "github.com/jsphweid/notetoken/cmd"

func main() {
	cmd.Execute()
}
