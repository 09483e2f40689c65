package models

import (
	"github.com/getzep/pdffacts/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	TextSource TextSource
	Config     *config.Config
}
