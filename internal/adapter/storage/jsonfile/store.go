package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/port"
)

// Store keeps products in a single JSON file. It is meant for local
// development and tests, not for concurrent processes.
type Store struct {
	mu       sync.RWMutex
	path     string
	products map[int64]*domain.ProductRecord
	nextID   int64
	now      func() time.Time
}

func NewStore(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, "products.json")

	store := &Store{
		path:     path,
		products: make(map[int64]*domain.ProductRecord),
		nextID:   1,
		now:      time.Now,
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	var list []*domain.ProductRecord
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	for _, p := range list {
		s.products[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}

	return nil
}

func (s *Store) save() error {
	tmpPath := s.path + ".tmp"

	data, err := json.MarshalIndent(s.sorted(nil), "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *Store) Create(_ context.Context, f domain.ProductFields) (*domain.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	p := &domain.ProductRecord{
		ID:        s.nextID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(p, f)

	s.products[p.ID] = p
	if err := s.save(); err != nil {
		delete(s.products, p.ID)
		return nil, err
	}
	s.nextID++

	clone := *p
	return &clone, nil
}

func (s *Store) FindByID(_ context.Context, id int64) (*domain.ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	clone := *p
	return &clone, nil
}

func (s *Store) Update(_ context.Context, id int64, f domain.ProductFields) (*domain.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	prev := *p
	apply(p, f)
	p.UpdatedAt = s.now().UTC()
	if err := s.save(); err != nil {
		*p = prev
		return nil, err
	}

	clone := *p
	return &clone, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}

	delete(s.products, id)
	if err := s.save(); err != nil {
		s.products[id] = p
		return err
	}
	return nil
}

func (s *Store) FindManyByOwner(_ context.Context, ownerID int64) ([]*domain.ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(func(p *domain.ProductRecord) bool { return p.OwnerID == ownerID }), nil
}

func (s *Store) FindAll(_ context.Context) ([]*domain.ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(nil), nil
}

// sorted returns copies of the products matching keep, ordered by id.
func (s *Store) sorted(keep func(*domain.ProductRecord) bool) []*domain.ProductRecord {
	list := make([]*domain.ProductRecord, 0, len(s.products))
	for _, p := range s.products {
		if keep != nil && !keep(p) {
			continue
		}
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func apply(p *domain.ProductRecord, f domain.ProductFields) {
	p.Name = f.Name
	p.Description = f.Description
	p.Price = f.Price
	p.OwnerID = f.OwnerID
	p.Image = f.Image
	p.Images = f.Images
}

var _ port.ProductStore = (*Store)(nil)
