package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierStore)(nil)

// SupplierStore profils fournisseurs en mémoire, unicité sur le numéro de
// registre de commerce.
type SupplierStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.Supplier
}

func NewSupplierStore() *SupplierStore {
	return &SupplierStore{byID: make(map[string]*entity.Supplier)}
}

func (s *SupplierStore) Create(supplier *entity.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.RegistryNumber == supplier.RegistryNumber {
			return domain.ErrRegistryNumberExists
		}
	}
	cp := *supplier
	s.byID[cp.ID] = &cp
	return nil
}

func (s *SupplierStore) GetByID(id string) (*entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sp, ok := s.byID[id]; ok {
		cp := *sp
		return &cp, nil
	}
	return nil, nil
}

func (s *SupplierStore) GetByRegistryNumber(registryNumber string) (*entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.byID {
		if sp.RegistryNumber == registryNumber {
			cp := *sp
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *SupplierStore) SetVerified(id string, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	sp.IsVerified = verified
	return nil
}

func (s *SupplierStore) UpdateRating(id string, average decimal.Decimal, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	sp.AverageRating = average
	sp.TotalReviews = total
	return nil
}

func (s *SupplierStore) List(limit, offset int) ([]*entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []*entity.Supplier
	for _, sp := range s.byID {
		cp := *sp
		all = append(all, &cp)
	}
	return paginate(all, limit, offset), nil
}
