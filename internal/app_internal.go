package internal

import (
	"github.com/rios0rios0/pkgcompare/internal/domain/entities"
	"github.com/rios0rios0/pkgcompare/internal/infrastructure/controllers"
)

// AppInternal holds every controller exposed on the command line.
type AppInternal struct {
	controllers       []entities.Controller
	compareController *controllers.CompareController
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	registered *[]entities.Controller,
	compareController *controllers.CompareController,
) *AppInternal {
	return &AppInternal{
		controllers:       *registered,
		compareController: compareController,
	}
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetDefaultController returns the controller run by the bare root command.
func (it *AppInternal) GetDefaultController() entities.Controller {
	return it.compareController
}
