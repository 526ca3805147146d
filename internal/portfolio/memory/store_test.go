package memory

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
)

func sampleInput(title string) domain.ProjectInput {
	return domain.ProjectInput{
		Title:       title,
		Description: "A test project",
		Category:    domain.CategoryWebsite,
		ImageURL:    "https://example.com/img.png",
		ProjectURL:  "https://example.com",
	}
}

func numericID(t *testing.T, id string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)
	return n
}

func TestCreateProject_IDsAreMonotonic(t *testing.T) {
	s := NewStore()

	var last int64
	for i := 0; i < 5; i++ {
		p := s.CreateProject(sampleInput("p"))
		n := numericID(t, p.ID)
		assert.Greater(t, n, last)
		last = n
	}

	// deleting must not free an id for reuse
	require.True(t, s.DeleteProject(last))
	p := s.CreateProject(sampleInput("after delete"))
	assert.Greater(t, numericID(t, p.ID), last)
}

func TestSeed_ConsumesCounterValues(t *testing.T) {
	s := NewStore()
	s.Seed()

	projects := s.AllProjects()
	require.Len(t, projects, 6)
	assert.Equal(t, "1", projects[0].ID)
	assert.Equal(t, "6", projects[5].ID)

	p := s.CreateProject(sampleInput("seventh"))
	assert.Equal(t, "7", p.ID)
}

func TestProject_RoundTrip(t *testing.T) {
	s := NewStore()

	created := s.CreateProject(sampleInput("round trip"))
	got, ok := s.Project(numericID(t, created.ID))
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestProject_NotFound(t *testing.T) {
	s := NewStore()

	_, ok := s.Project(99)
	assert.False(t, ok)
}

func TestUpdateProject_PartialMergePreservesFields(t *testing.T) {
	s := NewStore()
	created := s.CreateProject(sampleInput("original"))
	id := numericID(t, created.ID)

	title := "renamed"
	updated, ok := s.UpdateProject(id, domain.ProjectUpdate{Title: &title})
	require.True(t, ok)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, created.ProjectURL, updated.ProjectURL)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateProject_NotFound(t *testing.T) {
	s := NewStore()

	title := "x"
	_, ok := s.UpdateProject(1, domain.ProjectUpdate{Title: &title})
	assert.False(t, ok)
}

func TestDeleteProject_Idempotence(t *testing.T) {
	s := NewStore()
	created := s.CreateProject(sampleInput("doomed"))
	id := numericID(t, created.ID)

	assert.True(t, s.DeleteProject(id))
	assert.False(t, s.DeleteProject(id), "second delete of the same id reports nothing removed")
}

func TestCreateMessage_AssignsIDsAndStores(t *testing.T) {
	s := NewStore()

	m1 := s.CreateMessage(domain.MessageInput{Name: "A", Email: "a@example.com", Subject: "S", Body: "M"})
	m2 := s.CreateMessage(domain.MessageInput{Name: "B", Email: "b@example.com", Subject: "S2", Body: "M2"})

	assert.Equal(t, "1", m1.ID)
	assert.Equal(t, "2", m2.ID)
	assert.False(t, m1.SentAt.IsZero())

	msgs := s.AllMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "A", msgs[0].Name)
	assert.Equal(t, "B", msgs[1].Name)
}

func TestUsers_DuplicateUsernamesAllowed(t *testing.T) {
	s := NewStore()

	u1 := s.CreateUser("emmzy", "secret")
	u2 := s.CreateUser("emmzy", "other")
	assert.NotEqual(t, u1.ID, u2.ID)

	// lookup returns the first match
	got, ok := s.UserByUsername("emmzy")
	require.True(t, ok)
	assert.Equal(t, u1.ID, got.ID)

	_, ok = s.UserByUsername("nobody")
	assert.False(t, ok)

	byID, ok := s.User(numericID(t, u2.ID))
	require.True(t, ok)
	assert.Equal(t, "other", byID.Password)
}
