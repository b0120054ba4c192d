package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/registration"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var (
	_ repository.DocumentRepository = (*DocumentStore)(nil)
	_ registration.DocumentStore    = (*DocumentStore)(nil)
)

// DocumentStore pièces justificatives en mémoire. FailNextBatch permet aux
// tests de simuler un échec de la promotion transactionnelle: le lot entier
// est alors refusé sans insertion partielle.
type DocumentStore struct {
	mu            sync.RWMutex
	byID          map[string]*entity.Document
	failNextBatch error
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{byID: make(map[string]*entity.Document)}
}

// FailNextBatch arme l'erreur renvoyée par le prochain CreateBatch.
func (s *DocumentStore) FailNextBatch(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextBatch = err
}

func (s *DocumentStore) Create(doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *doc
	s.byID[cp.ID] = &cp
	return nil
}

// CreateBatch insère le lot en bloc, tout ou rien.
func (s *DocumentStore) CreateBatch(_ context.Context, docs []*entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNextBatch != nil {
		err := s.failNextBatch
		s.failNextBatch = nil
		return err
	}
	for _, doc := range docs {
		cp := *doc
		s.byID[cp.ID] = &cp
	}
	return nil
}

func (s *DocumentStore) GetByID(id string) (*entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.byID[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (s *DocumentStore) ListByUser(userID string) ([]*entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []*entity.Document
	for _, d := range s.byID {
		if d.UserID == userID {
			cp := *d
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UploadedAt.After(list[j].UploadedAt) })
	return list, nil
}

func (s *DocumentStore) ListByStatus(status string, limit, offset int) ([]*entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []*entity.Document
	for _, d := range s.byID {
		if d.Status == status {
			cp := *d
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UploadedAt.Before(list[j].UploadedAt) })
	return paginate(list, limit, offset), nil
}

func (s *DocumentStore) UpdateStatus(id, status string, reviewedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Status = status
	d.ReviewedAt = &reviewedAt
	return nil
}
