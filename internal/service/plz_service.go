package service

import (
	"context"
	"regexp"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

var plzPattern = regexp.MustCompile(`^[0-9]{5}$`)

// PLZService provides German postal code lookups for address forms.
type PLZService struct {
	plzRepo repository.PLZRepository
}

// NewPLZService returns a new PLZService.
func NewPLZService(plzRepo repository.PLZRepository) *PLZService {
	return &PLZService{plzRepo: plzRepo}
}

// LookupCities returns the cities for a postal code. Codes must be exactly
// five digits; an unknown but well-formed code yields an empty list, not an
// error, so address forms can fall back to free-text entry.
func (s *PLZService) LookupCities(ctx context.Context, plz string) ([]string, error) {
	if !plzPattern.MatchString(plz) {
		return nil, models.NewValidationError("PLZ must be exactly 5 digits")
	}
	cities, err := s.plzRepo.CitiesForPLZ(ctx, plz)
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}

// AddMapping registers a postal-code/city pair. Duplicates are ignored.
func (s *PLZService) AddMapping(ctx context.Context, plz, city string) error {
	if !plzPattern.MatchString(plz) {
		return models.NewValidationError("PLZ must be exactly 5 digits")
	}
	if city == "" {
		return models.NewValidationError("City is required")
	}
	return s.plzRepo.Upsert(ctx, plz, city)
}
