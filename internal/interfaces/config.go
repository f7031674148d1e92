// Package interfaces
package interfaces

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *config.Config
	SaveConfig() error
}
