package memory

import (
	"sync"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminStore)(nil)

// AdminStore appartenance admin en mémoire.
type AdminStore struct {
	mu   sync.RWMutex
	byID map[string]*entity.AdminUser
}

func NewAdminStore() *AdminStore {
	return &AdminStore{byID: make(map[string]*entity.AdminUser)}
}

// Add inscrit un compte dans la console d'administration.
func (s *AdminStore) Add(admin *entity.AdminUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *admin
	s.byID[cp.ID] = &cp
}

func (s *AdminStore) GetByID(id string) (*entity.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}
