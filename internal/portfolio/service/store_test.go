package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
	"github.com/emmzy1212/portfolio-backend/internal/portfolio/memory"
)

var errDown = errors.New("connection refused")

// fakeDurable simulates the Mongo adapter: hex ids, optional hard
// failure on every call.
type fakeDurable struct {
	down     bool
	projects map[string]domain.Project
	messages []domain.Message
	next     int
}

func newFakeDurable() *fakeDurable {
	return &fakeDurable{projects: make(map[string]domain.Project)}
}

func (f *fakeDurable) newID() string {
	f.next++
	return fmt.Sprintf("%024x", f.next)
}

func (f *fakeDurable) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if f.down {
		return nil, errDown
	}
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeDurable) Project(ctx context.Context, id string) (*domain.Project, error) {
	if f.down {
		return nil, errDown
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeDurable) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if f.down {
		return nil, errDown
	}
	p := domain.Project{
		ID:          f.newID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		CreatedAt:   time.Now().UTC(),
	}
	f.projects[p.ID] = p
	return &p, nil
}

func (f *fakeDurable) UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	if f.down {
		return nil, errDown
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	f.projects[id] = p
	return &p, nil
}

func (f *fakeDurable) DeleteProject(ctx context.Context, id string) (bool, error) {
	if f.down {
		return false, errDown
	}
	_, ok := f.projects[id]
	delete(f.projects, id)
	return ok, nil
}

func (f *fakeDurable) CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	if f.down {
		return nil, errDown
	}
	m := domain.Message{ID: f.newID(), Name: in.Name, Email: in.Email, Subject: in.Subject, Body: in.Body, SentAt: time.Now().UTC()}
	f.messages = append(f.messages, m)
	return &m, nil
}

func (f *fakeDurable) ListMessages(ctx context.Context) ([]domain.Message, error) {
	if f.down {
		return nil, errDown
	}
	return f.messages, nil
}

func (f *fakeDurable) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	if f.down {
		return nil, errDown
	}
	return &domain.User{ID: f.newID(), Username: username, Password: password}, nil
}

func (f *fakeDurable) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.down {
		return nil, errDown
	}
	return nil, domain.ErrNotFound
}

func input(title string) domain.ProjectInput {
	return domain.ProjectInput{
		Title:       title,
		Description: "d",
		Category:    domain.CategoryApp,
		ImageURL:    "/uploads/x.png",
		ProjectURL:  "https://example.com",
	}
}

func TestCreateProject_PrefersDurable(t *testing.T) {
	durable := newFakeDurable()
	store := NewStore(durable, memory.NewStore())

	p, err := store.CreateProject(context.Background(), input("durable"))
	require.NoError(t, err)
	assert.Len(t, p.ID, 24, "durable backend assigns hex ids")

	got, err := store.Project(context.Background(), domain.ParseRecordID(p.ID))
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
}

func TestCreateProject_FallsBackWhenDurableDown(t *testing.T) {
	durable := newFakeDurable()
	durable.down = true
	store := NewStore(durable, memory.NewStore())

	p, err := store.CreateProject(context.Background(), input("fallback"))
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID, "memory backend assigns integer ids")

	// retrievable immediately after, through the same facade
	got, err := store.Project(context.Background(), domain.ParseRecordID(p.ID))
	require.NoError(t, err)
	assert.Equal(t, "fallback", got.Title)
}

func TestCreateProject_NilDurableUsesMemory(t *testing.T) {
	store := NewStore(nil, memory.NewStore())

	p, err := store.CreateProject(context.Background(), input("no durable"))
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
}

func TestListProjects_FallsBackToMemory(t *testing.T) {
	durable := newFakeDurable()
	durable.down = true
	mem := memory.NewStore()
	mem.Seed()
	store := NewStore(durable, mem)

	projects, err := store.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 6)
}

func TestProject_DurableNotFoundIsNotFound(t *testing.T) {
	durable := newFakeDurable()
	store := NewStore(durable, memory.NewStore())

	_, err := store.Project(context.Background(), domain.ParseRecordID("507f1f77bcf86cd799439011"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProject_DurableShapedIDWithBackendDown(t *testing.T) {
	durable := newFakeDurable()
	p, err := durable.CreateProject(context.Background(), input("stranded"))
	require.NoError(t, err)

	durable.down = true
	store := NewStore(durable, memory.NewStore())

	// the memory id space cannot hold a hex id, so the fallback chain
	// resolves to not-found rather than an error
	_, err = store.Project(context.Background(), domain.ParseRecordID(p.ID))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProject_InvalidIDIsNotFound(t *testing.T) {
	store := NewStore(nil, memory.NewStore())

	_, err := store.Project(context.Background(), domain.ParseRecordID("not-an-id"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProject_DispatchesOnIDShape(t *testing.T) {
	durable := newFakeDurable()
	mem := memory.NewStore()
	store := NewStore(durable, mem)

	dp, err := store.CreateProject(context.Background(), input("in durable"))
	require.NoError(t, err)
	mp := mem.CreateProject(input("in memory"))

	title := "renamed"

	got, err := store.UpdateProject(context.Background(), domain.ParseRecordID(dp.ID), domain.ProjectUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	got, err = store.UpdateProject(context.Background(), domain.ParseRecordID(mp.ID), domain.ProjectUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, mp.ID, got.ID)
}

func TestDeleteProject_ReportsWhetherRemoved(t *testing.T) {
	durable := newFakeDurable()
	mem := memory.NewStore()
	store := NewStore(durable, mem)

	mp := mem.CreateProject(input("memory victim"))
	id := domain.ParseRecordID(mp.ID)

	assert.True(t, store.DeleteProject(context.Background(), id))
	assert.False(t, store.DeleteProject(context.Background(), id))

	// unknown durable-shaped id
	assert.False(t, store.DeleteProject(context.Background(), domain.ParseRecordID("507f1f77bcf86cd799439011")))
}

func TestCreateMessage_FallsBack(t *testing.T) {
	durable := newFakeDurable()
	durable.down = true
	mem := memory.NewStore()
	store := NewStore(durable, mem)

	m, err := store.CreateMessage(context.Background(), domain.MessageInput{
		Name: "A", Email: "a@example.com", Subject: "S", Body: "M",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", m.ID)
	assert.Len(t, mem.AllMessages(), 1)
}

func TestListMessages_DurableFirstThenFallback(t *testing.T) {
	durable := newFakeDurable()
	mem := memory.NewStore()
	store := NewStore(durable, mem)

	_, err := store.CreateMessage(context.Background(), domain.MessageInput{
		Name: "A", Email: "a@example.com", Subject: "S", Body: "M",
	})
	require.NoError(t, err)

	msgs, err := store.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].ID, 24)

	// outage: durable-written messages become invisible, memory serves
	durable.down = true
	msgs, err = store.ListMessages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestUsers_ThroughFacade(t *testing.T) {
	store := NewStore(nil, memory.NewStore())

	u, err := store.CreateUser(context.Background(), "emmzy", "secret")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	got, err := store.UserByUsername(context.Background(), "emmzy")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = store.UserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
