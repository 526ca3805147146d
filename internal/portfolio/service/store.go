// Package service holds the persistence facade: durable-first with
// transparent fallback to the in-memory store. Route handlers call the
// facade and never reason about backend availability themselves.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
	"github.com/emmzy1212/portfolio-backend/internal/portfolio/memory"
)

// DurableStore is the surface the Mongo adapter exposes to the facade.
// Implementations report absence as domain.ErrNotFound; any other error
// counts as a backend failure and triggers fallback.
type DurableStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	Project(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
	CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Store orchestrates the two backends. It owns no record state of its
// own, only the decision of which backend serves a given call. Records
// written to one backend are never migrated to the other; reads can
// diverge across availability transitions and that is accepted.
type Store struct {
	durable DurableStore // nil when MONGODB_URI is not configured
	mem     *memory.Store
}

func NewStore(durable DurableStore, mem *memory.Store) *Store {
	return &Store{durable: durable, mem: mem}
}

// ListProjects tries the durable backend and falls back to the memory
// store on any failure, including "not configured".
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.durable != nil {
		projects, err := s.durable.ListProjects(ctx)
		if err == nil {
			return projects, nil
		}
		log.Printf("durable store unavailable, using memory storage: %v", err)
	}
	return s.mem.AllProjects(), nil
}

// Project resolves a single project. Durable-shaped ids that cannot be
// served by the durable backend resolve to not-found: the memory id
// space cannot hold them.
func (s *Store) Project(ctx context.Context, id domain.RecordID) (*domain.Project, error) {
	switch id.Kind() {
	case domain.IDDurable:
		if s.durable != nil {
			p, err := s.durable.Project(ctx, id.Hex())
			if err == nil {
				return p, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				log.Printf("durable store unavailable, using memory storage: %v", err)
			}
		}
		return nil, domain.ErrNotFound
	case domain.IDMemory:
		if p, ok := s.mem.Project(id.Num()); ok {
			return &p, nil
		}
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrNotFound
}

// CreateProject attempts durable creation first and falls back to the
// memory store with the same input. The two backends assign different
// identifier schemes for the same logical create; the facade does not
// reconcile them.
func (s *Store) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if s.durable != nil {
		p, err := s.durable.CreateProject(ctx, in)
		if err == nil {
			return p, nil
		}
		log.Printf("durable store unavailable, using memory storage: %v", err)
	}
	p := s.mem.CreateProject(in)
	return &p, nil
}

// UpdateProject dispatches on identifier shape. A durable attempt that
// fails hard retries against the memory store, which cannot hold a
// durable-shaped id and therefore reports not-found.
func (s *Store) UpdateProject(ctx context.Context, id domain.RecordID, upd domain.ProjectUpdate) (*domain.Project, error) {
	switch id.Kind() {
	case domain.IDDurable:
		if s.durable != nil {
			p, err := s.durable.UpdateProject(ctx, id.Hex(), upd)
			if err == nil {
				return p, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				log.Printf("durable store unavailable, using memory storage: %v", err)
			}
		}
		return nil, domain.ErrNotFound
	case domain.IDMemory:
		if p, ok := s.mem.UpdateProject(id.Num(), upd); ok {
			return &p, nil
		}
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrNotFound
}

// DeleteProject dispatches on identifier shape and reports whether a
// record was removed. Not-found is a value here, never an error.
func (s *Store) DeleteProject(ctx context.Context, id domain.RecordID) bool {
	switch id.Kind() {
	case domain.IDDurable:
		if s.durable == nil {
			return false
		}
		deleted, err := s.durable.DeleteProject(ctx, id.Hex())
		if err != nil {
			log.Printf("durable store unavailable, using memory storage: %v", err)
			return false
		}
		return deleted
	case domain.IDMemory:
		return s.mem.DeleteProject(id.Num())
	}
	return false
}

// CreateMessage attempts durable storage first, then the memory store.
func (s *Store) CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	if s.durable != nil {
		m, err := s.durable.CreateMessage(ctx, in)
		if err == nil {
			return m, nil
		}
		log.Printf("durable store unavailable, using memory storage: %v", err)
	}
	m := s.mem.CreateMessage(in)
	return &m, nil
}

// ListMessages returns stored contact messages, durable-first.
func (s *Store) ListMessages(ctx context.Context) ([]domain.Message, error) {
	if s.durable != nil {
		msgs, err := s.durable.ListMessages(ctx)
		if err == nil {
			return msgs, nil
		}
		log.Printf("durable store unavailable, using memory storage: %v", err)
	}
	return s.mem.AllMessages(), nil
}

// CreateUser stores a user, durable-first. Duplicate usernames are not
// rejected here; callers pre-check with UserByUsername when they care.
func (s *Store) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	if s.durable != nil {
		u, err := s.durable.CreateUser(ctx, username, password)
		if err == nil {
			return u, nil
		}
		log.Printf("durable store unavailable, using memory storage: %v", err)
	}
	u := s.mem.CreateUser(username, password)
	return &u, nil
}

// UserByUsername looks a user up, durable-first.
func (s *Store) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.durable != nil {
		u, err := s.durable.UserByUsername(ctx, username)
		if err == nil {
			return u, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		log.Printf("durable store unavailable, using memory storage: %v", err)
	}
	if u, ok := s.mem.UserByUsername(username); ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}
