package usecase

import (
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/addresses"
)

// AddressUC implements the address usecase
type AddressUC struct {
	addressRepo addresses.AddressRepo
	addressGW   addresses.AddressGW
	cfg         *models.Config
}

// NewAddressUC creates a new address usecase
func NewAddressUC(addressRepo addresses.AddressRepo, addressGW addresses.AddressGW, cfg *models.Config) *AddressUC {
	return &AddressUC{
		addressRepo: addressRepo,
		addressGW:   addressGW,
		cfg:         cfg,
	}
}
