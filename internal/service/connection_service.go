package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/middleware"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

// ConnectionService provides the owner/caretaker connection graph logic.
// A pair of users holds at most one connection, either favorite or
// caretaker. Favorite is a lightweight bookmark; caretaker marks an actual
// engagement and is sticky: once a pair reaches it, the connection never
// goes back to favorite, only removal is possible.
type ConnectionService struct {
	connRepo      repository.ConnectionRepository
	userRepo      repository.UserRepository
	caretakerRepo repository.CaretakerRepository
	prefsRepo     repository.PreferencesRepository
	petRepo       repository.PetRepository
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(
	connRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	caretakerRepo repository.CaretakerRepository,
	prefsRepo repository.PreferencesRepository,
	petRepo repository.PetRepository,
) *ConnectionService {
	return &ConnectionService{
		connRepo:      connRepo,
		userRepo:      userRepo,
		caretakerRepo: caretakerRepo,
		prefsRepo:     prefsRepo,
		petRepo:       petRepo,
	}
}

// SaveCaretaker records an engagement between owner and caretaker. The
// operation is idempotent: a missing connection is created as caretaker, a
// favorite is promoted, an existing caretaker connection stays as is.
func (s *ConnectionService) SaveCaretaker(ctx context.Context, ownerID, caretakerID uint) error {
	if err := s.validatePair(ctx, ownerID, caretakerID); err != nil {
		return err
	}

	existing, err := s.connRepo.GetBetween(ctx, ownerID, caretakerID)
	if err != nil {
		return err
	}

	switch {
	case existing == nil:
		return s.connRepo.Create(ctx, &models.Connection{
			OwnerID:     ownerID,
			CaretakerID: caretakerID,
			Type:        models.ConnectionTypeCaretaker,
		})
	case existing.Type == models.ConnectionTypeFavorite:
		return s.connRepo.Promote(ctx, ownerID, caretakerID)
	default:
		return nil
	}
}

// RemoveCaretaker deletes the connection between owner and caretaker
// regardless of its type. Removing a non-existent connection is a no-op.
func (s *ConnectionService) RemoveCaretaker(ctx context.Context, ownerID, caretakerID uint) error {
	return s.connRepo.Delete(ctx, ownerID, caretakerID)
}

// ToggleFavorite bookmarks or un-bookmarks a caretaker and reports whether
// the caretaker is a favorite afterwards. An engaged caretaker cannot be
// toggled: the engagement would be silently lost.
func (s *ConnectionService) ToggleFavorite(ctx context.Context, ownerID, caretakerID uint) (bool, error) {
	if err := s.validatePair(ctx, ownerID, caretakerID); err != nil {
		return false, err
	}

	existing, err := s.connRepo.GetBetween(ctx, ownerID, caretakerID)
	if err != nil {
		return false, err
	}

	switch {
	case existing == nil:
		err := s.connRepo.Create(ctx, &models.Connection{
			OwnerID:     ownerID,
			CaretakerID: caretakerID,
			Type:        models.ConnectionTypeFavorite,
		})
		return err == nil, err
	case existing.Type == models.ConnectionTypeCaretaker:
		return false, models.NewConflictError("Saved caretakers cannot be toggled as favorites")
	default:
		return false, s.connRepo.Delete(ctx, ownerID, caretakerID)
	}
}

// IsFavorite reports whether the owner has bookmarked the caretaker.
func (s *ConnectionService) IsFavorite(ctx context.Context, ownerID, caretakerID uint) (bool, error) {
	conn, err := s.connRepo.GetBetween(ctx, ownerID, caretakerID)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Type == models.ConnectionTypeFavorite, nil
}

// IsCaretakerSaved reports whether the owner has an engagement with the caretaker.
func (s *ConnectionService) IsCaretakerSaved(ctx context.Context, ownerID, caretakerID uint) (bool, error) {
	conn, err := s.connRepo.GetBetween(ctx, ownerID, caretakerID)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Type == models.ConnectionTypeCaretaker, nil
}

// GetFavoriteCaretakers returns summaries of the owner's bookmarked caretakers.
func (s *ConnectionService) GetFavoriteCaretakers(ctx context.Context, ownerID uint) ([]models.CaretakerSummary, error) {
	return s.caretakerSummaries(ctx, ownerID, models.ConnectionTypeFavorite)
}

// GetSavedCaretakers returns summaries of the owner's engaged caretakers.
func (s *ConnectionService) GetSavedCaretakers(ctx context.Context, ownerID uint) ([]models.CaretakerSummary, error) {
	return s.caretakerSummaries(ctx, ownerID, models.ConnectionTypeCaretaker)
}

// caretakerSummaries resolves the owner's connections of one type into
// caretaker summaries. Connections pointing at users without a caretaker
// profile are dropped from the result and logged; the row itself stays until
// the user deletion cascade removes it.
func (s *ConnectionService) caretakerSummaries(ctx context.Context, ownerID uint, connType models.ConnectionType) ([]models.CaretakerSummary, error) {
	conns, err := s.connRepo.ListByOwner(ctx, ownerID, connType)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return []models.CaretakerSummary{}, nil
	}

	ids := make([]uint, 0, len(conns))
	for _, conn := range conns {
		ids = append(ids, conn.CaretakerID)
	}

	profiles, err := s.caretakerRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byUserID := make(map[uint]*models.CaretakerProfile, len(profiles))
	for i := range profiles {
		byUserID[profiles[i].UserID] = &profiles[i]
	}

	summaries := make([]models.CaretakerSummary, 0, len(conns))
	for _, conn := range conns {
		profile, ok := byUserID[conn.CaretakerID]
		if !ok {
			middleware.Logger.WarnContext(ctx, "Dropping dangling connection",
				slog.Uint64("owner_id", uint64(ownerID)),
				slog.Uint64("caretaker_id", uint64(conn.CaretakerID)),
			)
			continue
		}
		summaries = append(summaries, Summarize(profile))
	}
	return summaries, nil
}

// GetCaretakerClients returns the redacted client views for every owner
// connected to the caretaker, favorites included. Preferences and pets load
// concurrently per client; a
// failing owner load drops that client from the result instead of failing
// the whole listing.
func (s *ConnectionService) GetCaretakerClients(ctx context.Context, caretakerID uint) ([]models.ClientView, error) {
	conns, err := s.connRepo.ListByCaretaker(ctx, caretakerID)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return []models.ClientView{}, nil
	}

	views := make([]*models.ClientView, len(conns))
	var wg sync.WaitGroup
	for i, conn := range conns {
		wg.Add(1)
		go func(i int, ownerID uint) {
			defer wg.Done()
			view, err := s.loadClientView(ctx, ownerID)
			if err != nil {
				middleware.Logger.WarnContext(ctx, "Skipping client in listing",
					slog.Uint64("owner_id", uint64(ownerID)),
					slog.String("error", err.Error()),
				)
				return
			}
			views[i] = view
		}(i, conn.OwnerID)
	}
	wg.Wait()

	out := make([]models.ClientView, 0, len(views))
	for _, view := range views {
		if view != nil {
			out = append(out, *view)
		}
	}
	return out, nil
}

// loadClientView assembles one owner's redacted view. Preferences and pets
// load in parallel.
func (s *ConnectionService) loadClientView(ctx context.Context, ownerID uint) (*models.ClientView, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		prefs    *models.OwnerPreferences
		pets     []models.Pet
		prefsErr error
		petsErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		prefs, prefsErr = s.prefsRepo.GetByOwner(ctx, ownerID)
	}()
	go func() {
		defer wg.Done()
		pets, petsErr = s.petRepo.GetOwnerPets(ctx, ownerID)
	}()
	wg.Wait()

	if prefsErr != nil {
		return nil, prefsErr
	}
	if petsErr != nil {
		return nil, petsErr
	}

	view := ProjectClientView(owner, prefs, pets)
	return &view, nil
}

// validatePair checks that both sides exist and have the right roles.
func (s *ConnectionService) validatePair(ctx context.Context, ownerID, caretakerID uint) error {
	if ownerID == caretakerID {
		return models.NewValidationError("Cannot connect a user with themselves")
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner.UserType != models.UserTypeOwner {
		return models.NewValidationError("Only owners can save caretakers")
	}

	target, err := s.userRepo.GetByID(ctx, caretakerID)
	if err != nil {
		return err
	}
	if target.UserType != models.UserTypeCaretaker {
		return models.NewValidationError("Target user is not a caretaker")
	}
	return nil
}
