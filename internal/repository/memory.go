package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coachhub/catalog/internal/model"
)

// MemoryStore is an in-process catalog store with the same observable
// behavior as Repository. It backs STORE_BACKEND=memory and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	packages []*model.CreditPackage
	skills   []*model.Skill
	now      func() time.Time

	// Err, when set, is returned by every operation to simulate an
	// unreachable store.
	Err error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Ping reports the injected error, if any.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return m.Err
}

// Close is a no-op.
func (m *MemoryStore) Close() {}

// ListCreditPackages returns the projected credit packages in insertion order.
func (m *MemoryStore) ListCreditPackages(ctx context.Context) ([]*model.CreditPackage, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.CreditPackage, 0, len(m.packages))
	for _, p := range m.packages {
		out = append(out, &model.CreditPackage{
			ID:           p.ID,
			Name:         p.Name,
			CreditAmount: p.CreditAmount,
			Price:        p.Price,
		})
	}
	return out, nil
}

// FindCreditPackagesByName returns credit packages named name.
func (m *MemoryStore) FindCreditPackagesByName(ctx context.Context, name string) ([]*model.CreditPackage, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.CreditPackage
	for _, p := range m.packages {
		if p.Name == name {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// CreateCreditPackage stores pkg, enforcing name uniqueness like the unique index.
func (m *MemoryStore) CreateCreditPackage(ctx context.Context, pkg *model.CreditPackage) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.packages {
		if p.Name == pkg.Name {
			return ErrDuplicateName
		}
	}

	pkg.CreatedAt = m.now()
	stored := *pkg
	m.packages = append(m.packages, &stored)
	return nil
}

// DeleteCreditPackage removes a credit package and returns the rows removed.
func (m *MemoryStore) DeleteCreditPackage(ctx context.Context, id string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	id = parsed.String()

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.packages {
		if p.ID == id {
			m.packages = append(m.packages[:i], m.packages[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ListSkills returns the projected skills in insertion order.
func (m *MemoryStore) ListSkills(ctx context.Context) ([]*model.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, &model.Skill{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// FindSkillsByName returns skills named name.
func (m *MemoryStore) FindSkillsByName(ctx context.Context, name string) ([]*model.Skill, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*model.Skill
	for _, s := range m.skills {
		if s.Name == name {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// CreateSkill stores skill, enforcing name uniqueness.
func (m *MemoryStore) CreateSkill(ctx context.Context, skill *model.Skill) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.skills {
		if s.Name == skill.Name {
			return ErrDuplicateName
		}
	}

	skill.CreatedAt = m.now()
	stored := *skill
	m.skills = append(m.skills, &stored)
	return nil
}

// DeleteSkill removes a skill and returns the rows removed.
func (m *MemoryStore) DeleteSkill(ctx context.Context, id string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	id = parsed.String()

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.skills {
		if s.ID == id {
			m.skills = append(m.skills[:i], m.skills[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
