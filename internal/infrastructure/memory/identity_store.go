// Package memory fournit des implémentations en mémoire des ports de
// persistance, utilisées par les tests unitaires. Toutes sont sûres pour
// un accès concurrent.
package memory

import (
	"sync"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.IdentityRepository = (*IdentityStore)(nil)

// IdentityStore table users en mémoire, unicité sur l'email.
type IdentityStore struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Identity
	byEmail map[string]*entity.Identity
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		byID:    make(map[string]*entity.Identity),
		byEmail: make(map[string]*entity.Identity),
	}
}

func (s *IdentityStore) Create(identity *entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[identity.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *identity
	s.byID[cp.ID] = &cp
	s.byEmail[cp.Email] = &cp
	return nil
}

func (s *IdentityStore) GetByID(id string) (*entity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.byID[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (s *IdentityStore) GetByEmail(email string) (*entity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.byEmail[email]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}
