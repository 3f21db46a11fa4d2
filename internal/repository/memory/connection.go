package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
)

type connectionRepository struct {
	store *Store
}

// NewConnectionRepository returns an in-memory ConnectionRepository backed by store.
func NewConnectionRepository(store *Store) repository.ConnectionRepository {
	return &connectionRepository{store: store}
}

func (r *connectionRepository) GetBetween(_ context.Context, ownerID, caretakerID uint) (*models.Connection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, conn := range r.store.connections {
		if conn.OwnerID == ownerID && conn.CaretakerID == caretakerID {
			c := conn
			return &c, nil
		}
	}
	return nil, nil
}

func (r *connectionRepository) Create(_ context.Context, conn *models.Connection) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.connections {
		if existing.OwnerID == conn.OwnerID && existing.CaretakerID == conn.CaretakerID {
			return models.NewConflictError("Connection already exists")
		}
	}

	r.store.nextConnectionID++
	conn.ID = r.store.nextConnectionID
	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	r.store.connections[conn.ID] = *conn
	return nil
}

func (r *connectionRepository) Promote(_ context.Context, ownerID, caretakerID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, conn := range r.store.connections {
		if conn.OwnerID == ownerID && conn.CaretakerID == caretakerID {
			conn.Type = models.ConnectionTypeCaretaker
			conn.UpdatedAt = time.Now()
			r.store.connections[id] = conn
			return nil
		}
	}
	return models.NewNotFoundError("Connection", ownerID)
}

func (r *connectionRepository) Delete(_ context.Context, ownerID, caretakerID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, conn := range r.store.connections {
		if conn.OwnerID == ownerID && conn.CaretakerID == caretakerID {
			delete(r.store.connections, id)
			return nil
		}
	}
	return nil
}

func (r *connectionRepository) ListByOwner(_ context.Context, ownerID uint, connType models.ConnectionType) ([]models.Connection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var conns []models.Connection
	for _, conn := range r.store.connections {
		if conn.OwnerID != ownerID {
			continue
		}
		if connType != "" && conn.Type != connType {
			continue
		}
		conns = append(conns, conn)
	}
	sortNewestFirst(conns)
	return conns, nil
}

func (r *connectionRepository) ListByCaretaker(_ context.Context, caretakerID uint) ([]models.Connection, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var conns []models.Connection
	for _, conn := range r.store.connections {
		if conn.CaretakerID == caretakerID {
			conns = append(conns, conn)
		}
	}
	sortNewestFirst(conns)
	return conns, nil
}

func (r *connectionRepository) CountByType(_ context.Context, connType models.ConnectionType) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, conn := range r.store.connections {
		if conn.Type == connType {
			count++
		}
	}
	return count, nil
}

func sortNewestFirst(conns []models.Connection) {
	sort.Slice(conns, func(i, j int) bool {
		if conns[i].CreatedAt.Equal(conns[j].CreatedAt) {
			return conns[i].ID > conns[j].ID
		}
		return conns[i].CreatedAt.After(conns[j].CreatedAt)
	})
}
