// Package http maps the portfolio REST surface onto the persistence
// facade. Upload handling and the contact notifier live behind small
// interfaces so tests can swap them.
package http

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
	"github.com/emmzy1212/portfolio-backend/internal/portfolio/service"
)

// FileSaver persists an uploaded image and returns its stored filename.
type FileSaver interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// Notifier forwards a stored contact message to an external channel.
type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, m domain.Message) error
}

type Handler struct {
	store    *service.Store
	files    FileSaver
	notifier Notifier
}

func NewHandler(store *service.Store, files FileSaver, notifier Notifier) *Handler {
	return &Handler{store: store, files: files, notifier: notifier}
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := make([]domain.Project, 0, len(projects))
		for _, p := range projects {
			if p.Category == domain.Category(category) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Handler) get(c *gin.Context) {
	id := domain.ParseRecordID(c.Param("id"))

	p, err := h.store.Project(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	projectURL := c.PostForm("projectUrl")

	if title == "" || description == "" || category == "" || projectURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if !domain.Category(category).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	imageURL, ok := h.resolveImage(c)
	if !ok {
		return
	}
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image URL or file is required"})
		return
	}

	p, err := h.store.CreateProject(c.Request.Context(), domain.ProjectInput{
		Title:       title,
		Description: description,
		Category:    domain.Category(category),
		ImageURL:    imageURL,
		ProjectURL:  projectURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id := domain.ParseRecordID(c.Param("id"))

	var upd domain.ProjectUpdate
	if v, ok := c.GetPostForm("title"); ok && v != "" {
		upd.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok && v != "" {
		upd.Description = &v
	}
	if v, ok := c.GetPostForm("category"); ok && v != "" {
		cat := domain.Category(v)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
			return
		}
		upd.Category = &cat
	}
	if v, ok := c.GetPostForm("projectUrl"); ok && v != "" {
		upd.ProjectURL = &v
	}

	imageURL, ok := h.resolveImage(c)
	if !ok {
		return
	}
	if imageURL != "" {
		upd.ImageURL = &imageURL
	}

	p, err := h.store.UpdateProject(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id := domain.ParseRecordID(c.Param("id"))

	if !h.store.DeleteProject(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveImage prefers an uploaded projectImage file over an imageUrl
// form field. The false return means a response was already written.
func (h *Handler) resolveImage(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("projectImage")
	if err != nil {
		// no file part; fall through to the imageUrl field
		return c.PostForm("imageUrl"), true
	}

	name, err := h.files.Save(fh)
	if err != nil {
		log.Printf("upload rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image upload"})
		return "", false
	}
	return "/uploads/" + name, true
}
