// Package interfaces
package interfaces

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
