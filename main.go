package main

import (
	cmd "github.com/getzep/pdffacts/cmd/pdffacts"
	"github.com/getzep/pdffacts/internal"
)

var log = internal.GetLogger()

func main() {
	log.Debug("Starting pdffacts")
	cmd.Execute()
}
