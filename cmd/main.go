// cmd/main.go is the application entry point.
// It builds the command tree and runs it.
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
