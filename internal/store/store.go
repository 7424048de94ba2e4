package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/pkg/storage"

	"go.uber.org/zap"
)

// Store is the single source of truth for the five collections and the only
// component that writes the primary persisted document. Every accepted
// operation produces a new state value (previously returned snapshots stay
// valid to read) and persists the complete state under one key.
//
// The HTTP layer runs handlers concurrently, so every operation takes the
// mutex: mutations are serialized end to end (pre-check through commit), and
// State() hands out the current snapshot under the same lock.
type Store struct {
	storage storage.Store
	log     *zap.Logger
	now     func() time.Time

	mu    sync.Mutex
	state *models.AppState
}

func New(st storage.Store, log *zap.Logger) *Store {
	s := &Store{
		storage: st,
		log:     log,
		now:     time.Now,
		state:   models.EmptyState(),
	}
	s.load()
	return s
}

// load reads the primary document. An absent or corrupt document is treated
// as "no prior data" and logged, never surfaced as an error.
func (s *Store) load() {
	data, ok, err := s.storage.Read(storage.KeyAppState)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn("failed to read persisted state, starting empty", zap.Error(err))
		}
		return
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn("persisted state is corrupt, starting empty", zap.Error(err))
		return
	}
	normalize(&state)
	s.state = &state

	s.log.Info("state loaded",
		zap.Int("customers", len(state.Customers)),
		zap.Int("serviceOrders", len(state.ServiceOrders)),
		zap.Int("products", len(state.Products)),
		zap.Int("sales", len(state.Sales)),
		zap.Int("stockMovements", len(state.StockMovements)),
	)
}

func normalize(state *models.AppState) {
	if state.Customers == nil {
		state.Customers = []models.Customer{}
	}
	if state.ServiceOrders == nil {
		state.ServiceOrders = []models.ServiceOrder{}
	}
	if state.Products == nil {
		state.Products = []models.Product{}
	}
	if state.Sales == nil {
		state.Sales = []models.Sale{}
	}
	if state.StockMovements == nil {
		state.StockMovements = []models.StockMovement{}
	}
}

// State returns the current snapshot. Callers must treat it as read-only;
// the snapshot itself never changes once handed out.
func (s *Store) State() *models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// commit installs the new state and persists it wholesale.
func (s *Store) commit(next *models.AppState) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("serialize state: %w", err)
	}
	if err := s.storage.Write(storage.KeyAppState, data); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	s.state = next
	return nil
}

// LoadAll replaces the entire state wholesale (startup load and backup
// restore both funnel through the same path).
func (s *Store) LoadAll(snapshot models.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalize(&snapshot)
	return s.commit(&snapshot)
}
