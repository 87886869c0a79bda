// Package modkit builds API modules: the deps they share, their options, and
// how they mount under a versioned router
package modkit

import (
	"dollarwords/internal/modkit/module"
	"dollarwords/internal/platform/config"
	"dollarwords/internal/platform/logger"
)

// Module is what the API mounts
type Module = module.Module

// Deps are handed to every module constructor
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}
