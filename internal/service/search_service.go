package service

import (
	"context"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/observability"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

const defaultPageSize = 20
const maxPageSize = 100

// SearchService provides caretaker search with best-price resolution.
type SearchService struct {
	caretakerRepo repository.CaretakerRepository
}

// NewSearchService returns a new SearchService.
func NewSearchService(caretakerRepo repository.CaretakerRepository) *SearchService {
	return &SearchService{caretakerRepo: caretakerRepo}
}

// Search runs a caretaker search. Structural filters (location, price range,
// rating) are applied by the repository; service filtering uses OR semantics
// and runs here, before pagination, so the reported totals stay exact.
func (s *SearchService) Search(ctx context.Context, filter models.SearchFilter) (*models.SearchResult, error) {
	start := time.Now()

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	profiles, err := s.caretakerRepo.Search(ctx, filter)
	if err != nil {
		observability.ObserveSearch(start, "error", 0)
		return nil, err
	}

	if len(filter.Services) > 0 {
		profiles = filterByServices(profiles, filter.Services)
	}

	total := len(profiles)
	totalPages := (total + filter.PageSize - 1) / filter.PageSize
	offset := (filter.Page - 1) * filter.PageSize

	var page []models.CaretakerProfile
	if offset < total {
		end := offset + filter.PageSize
		if end > total {
			end = total
		}
		page = profiles[offset:end]
	}

	summaries := make([]models.CaretakerSummary, 0, len(page))
	for i := range page {
		summaries = append(summaries, Summarize(&page[i]))
	}

	observability.ObserveSearch(start, "ok", total)
	return &models.SearchResult{
		Caretakers: summaries,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Summarize builds the public search projection of a caretaker profile. The
// full last name never leaves this function; clients only see the shortened
// display name and the resolved best price.
func Summarize(profile *models.CaretakerProfile) models.CaretakerSummary {
	return models.CaretakerSummary{
		ID:            profile.ID,
		UserID:        profile.UserID,
		Name:          profile.User.DisplayName(),
		City:          profile.User.City,
		PLZ:           profile.User.PLZ,
		PhotoURL:      profile.User.ProfilePhotoURL,
		Services:      profile.Services,
		DisplayRate:   ResolveBestPrice(profile),
		ServiceRadius: profile.ServiceRadius,
		Rating:        profile.Rating,
		ReviewCount:   profile.ReviewCount,
		IsVerified:    profile.IsVerified,
		ShortAbout:    profile.ShortAbout,
	}
}

// filterByServices keeps profiles offering at least one requested service.
func filterByServices(profiles []models.CaretakerProfile, wanted []string) []models.CaretakerProfile {
	var out []models.CaretakerProfile
	for _, profile := range profiles {
		if offersAny(profile.Services, wanted) {
			out = append(out, profile)
		}
	}
	return out
}

func offersAny(offered, wanted []string) bool {
	for _, w := range wanted {
		for _, o := range offered {
			if o == w {
				return true
			}
		}
	}
	return false
}
