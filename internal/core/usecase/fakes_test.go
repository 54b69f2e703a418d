package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/core/domain"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// memoryStore - хранилище в памяти. Если задан err, все методы возвращают его.
type memoryStore struct {
	mu     sync.Mutex
	rows   []domain.Property
	err    error
	nextID int
}

func newMemoryStore(rows ...domain.Property) *memoryStore {
	return &memoryStore{rows: rows, nextID: 100}
}

func unreachableStore() *memoryStore {
	return &memoryStore{err: fmt.Errorf("dial tcp: connection refused: %w", domain.ErrStoreUnavailable)}
}

func (s *memoryStore) Ping(ctx context.Context) error { return s.err }

func (s *memoryStore) List(ctx context.Context) ([]domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.Property(nil), s.rows...), nil
}

func (s *memoryStore) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.rows {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (s *memoryStore) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return filters.Apply(s.rows), nil
}

func (s *memoryStore) ListPriceStatus(ctx context.Context) ([]domain.PriceStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return domain.PriceStatusOf(s.rows), nil
}

func (s *memoryStore) Insert(ctx context.Context, np domain.NewProperty) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	now := time.Now().UTC()
	p := domain.Property{
		ID:           fmt.Sprintf("%d", s.nextID),
		Title:        np.Title,
		Description:  np.Description,
		Price:        np.Price,
		Location:     np.Location,
		PropertyType: np.PropertyType,
		Status:       np.Status,
		Bedrooms:     np.Bedrooms,
		Bathrooms:    np.Bathrooms,
		Area:         np.Area,
		Features:     np.Features,
		Images:       np.Images,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.rows = append(s.rows, p)
	return &p, nil
}

func (s *memoryStore) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		p := &s.rows[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Bedrooms != nil {
			p.Bedrooms = *patch.Bedrooms
		}
		p.UpdatedAt = patch.UpdatedAt
		updated := *p
		return &updated, nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (s *memoryStore) Delete(ctx context.Context, id string) (int64, error) {
	return s.DeleteMany(ctx, []string{id})
}

func (s *memoryStore) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.rows[:0]
	var deleted int64
	for _, p := range s.rows {
		if _, ok := drop[p.ID]; ok {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	s.rows = kept
	return deleted, nil
}

func (s *memoryStore) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.rows))
	for i, p := range s.rows {
		out[i] = p.ID
	}
	return out
}

type MockEvents struct{ mock.Mock }

func (m *MockEvents) PropertyCreated(ctx context.Context, property domain.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockEvents) PropertyUpdated(ctx context.Context, property domain.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockEvents) PropertiesDeleted(ctx context.Context, ids []string) error {
	return m.Called(ctx, ids).Error(0)
}

type MockAdminDirectory struct{ mock.Mock }

func (m *MockAdminDirectory) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) GenerateToken(ctx context.Context, user *domain.AdminUser, ttl time.Duration) (string, error) {
	args := m.Called(ctx, user, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claims), args.Error(1)
}
