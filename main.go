package main

import (
	"fmt"
	"os"

	"maze-projector/cmd"
)

func main() {
	if err := cmd.Execute(runViewer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
