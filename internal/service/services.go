package service

import (
	"github.com/kirinyoku/tix-web/internal/api"
	"github.com/kirinyoku/tix-web/internal/service/admin"
	"github.com/kirinyoku/tix-web/internal/service/booking"
	"github.com/kirinyoku/tix-web/internal/service/catalog"
	"github.com/kirinyoku/tix-web/internal/service/ledger"
)

type Services struct {
	Catalog *catalog.Service
	Booking *booking.Service
	Ledger  *ledger.Service
	Admin   *admin.Service
}

func NewServices(client *api.Client) *Services {
	return &Services{
		Catalog: catalog.New(client.Events),
		Booking: booking.New(client.Bookings),
		Ledger:  ledger.New(client.Bookings, client.Events),
		Admin:   admin.New(client.Events),
	}
}
