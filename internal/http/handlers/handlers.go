package handlers

import (
	"github.com/tripoli-karting/tentdesk/internal/service"
	"github.com/tripoli-karting/tentdesk/internal/store"
	"github.com/tripoli-karting/tentdesk/pkg/config"
)

type Handlers struct {
	authService    service.AuthService
	bookingService service.BookingService
	inventory      *store.Inventory
	config         *config.Config
}

func New(
	authService service.AuthService,
	bookingService service.BookingService,
	inventory *store.Inventory,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:    authService,
		bookingService: bookingService,
		inventory:      inventory,
		config:         config,
	}
}
