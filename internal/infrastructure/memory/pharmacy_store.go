package memory

import (
	"sync"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.PharmacyRepository = (*PharmacyStore)(nil)

// PharmacyStore profils pharmacies en mémoire, unicité sur le numéro de
// licence.
type PharmacyStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.Pharmacy
}

func NewPharmacyStore() *PharmacyStore {
	return &PharmacyStore{byID: make(map[string]*entity.Pharmacy)}
}

func (s *PharmacyStore) Create(pharmacy *entity.Pharmacy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.LicenseNumber == pharmacy.LicenseNumber {
			return domain.ErrLicenseNumberExists
		}
	}
	cp := *pharmacy
	s.byID[cp.ID] = &cp
	return nil
}

func (s *PharmacyStore) GetByID(id string) (*entity.Pharmacy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (s *PharmacyStore) GetByLicenseNumber(licenseNumber string) (*entity.Pharmacy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.byID {
		if p.LicenseNumber == licenseNumber {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *PharmacyStore) SetVerified(id string, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsVerified = verified
	return nil
}

func (s *PharmacyStore) List(limit, offset int) ([]*entity.Pharmacy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []*entity.Pharmacy
	for _, p := range s.byID {
		cp := *p
		all = append(all, &cp)
	}
	return paginate(all, limit, offset), nil
}

// paginate découpe une tranche selon limit/offset, limit <= 0 signifie tout.
func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
