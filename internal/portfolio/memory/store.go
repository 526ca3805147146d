package memory

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
)

// Store is the process-local fallback backend. Each entity kind gets its
// own map keyed by an auto-incrementing surrogate key; counters start at
// 1 and are never reused, even after deletes.
//
// Operations cannot fail: absence is reported as a bool, never an error.
type Store struct {
	mu sync.Mutex

	users    map[int64]domain.User
	projects map[int64]domain.Project
	messages map[int64]domain.Message

	nextUser    int64
	nextProject int64
	nextMessage int64
}

func NewStore() *Store {
	return &Store{
		users:       make(map[int64]domain.User),
		projects:    make(map[int64]domain.Project),
		messages:    make(map[int64]domain.Message),
		nextUser:    1,
		nextProject: 1,
		nextMessage: 1,
	}
}

// CreateProject assigns the next surrogate key and stores the project.
func (s *Store) CreateProject(in domain.ProjectInput) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProject
	s.nextProject++

	p := domain.Project{
		ID:          strconv.FormatInt(id, 10),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		CreatedAt:   time.Now().UTC(),
	}
	s.projects[id] = p
	return p
}

// AllProjects returns every stored project in insertion (key) order.
func (s *Store) AllProjects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]int64, 0, len(s.projects))
	for k := range s.projects {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]domain.Project, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.projects[k])
	}
	return out
}

func (s *Store) Project(id int64) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	return p, ok
}

// UpdateProject shallow-merges the non-nil fields of upd over the stored
// record. The id and creation time are not part of ProjectUpdate, so they
// survive every merge.
func (s *Store) UpdateProject(id int64, upd domain.ProjectUpdate) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return domain.Project{}, false
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.ProjectURL != nil {
		p.ProjectURL = *upd.ProjectURL
	}

	s.projects[id] = p
	return p, true
}

// DeleteProject removes the record if present and reports whether
// anything was removed. A second delete of the same id returns false.
func (s *Store) DeleteProject(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false
	}
	delete(s.projects, id)
	return true
}

// CreateMessage assigns the next surrogate key and stores the message.
// Messages are immutable after creation; no update or delete exists.
func (s *Store) CreateMessage(in domain.MessageInput) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextMessage
	s.nextMessage++

	m := domain.Message{
		ID:      strconv.FormatInt(id, 10),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
		SentAt:  time.Now().UTC(),
	}
	s.messages[id] = m
	return m
}

func (s *Store) AllMessages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]int64, 0, len(s.messages))
	for k := range s.messages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]domain.Message, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.messages[k])
	}
	return out
}

// CreateUser stores a user without any username uniqueness check; callers
// that care pre-check with UserByUsername.
func (s *Store) CreateUser(username, password string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextUser
	s.nextUser++

	u := domain.User{
		ID:       strconv.FormatInt(id, 10),
		Username: username,
		Password: password,
	}
	s.users[id] = u
	return u
}

func (s *Store) User(id int64) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

// UserByUsername linearly scans for the first matching username.
func (s *Store) UserByUsername(username string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]int64, 0, len(s.users))
	for k := range s.users {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		if s.users[k].Username == username {
			return s.users[k], true
		}
	}
	return domain.User{}, false
}
