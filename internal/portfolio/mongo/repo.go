// Package mongo is the durable backend adapter. Every operation either
// returns a domain-shaped record or an error; the fallback decision is
// made one layer up, never here.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
)

const (
	projectsColl = "projects"
	messagesColl = "messages"
	usersColl    = "users"
)

type Repo struct {
	db *mongo.Database
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{db: db}
}

// Ping reports current reachability of the backend.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}

type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	ImageURL    string             `bson:"imageUrl"`
	ProjectURL  string             `bson:"projectUrl"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Category:    domain.Category(d.Category),
		ImageURL:    d.ImageURL,
		ProjectURL:  d.ProjectURL,
		CreatedAt:   d.CreatedAt,
	}
}

// ListProjects returns all projects, newest first.
func (r *Repo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.db.Collection(projectsColl).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Project, 0, 16)
	for cur.Next(ctx) {
		var d projectDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// Project fetches a single project by ObjectID hex.
func (r *Repo) Project(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var d projectDoc
	err = r.db.Collection(projectsColl).FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	p := d.toDomain()
	return &p, nil
}

// CreateProject inserts a new project; the category enum is enforced here
// the way the schema used to enforce it.
func (r *Repo) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("invalid category %q", in.Category)
	}

	d := projectDoc{
		Title:       in.Title,
		Description: in.Description,
		Category:    string(in.Category),
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		CreatedAt:   time.Now().UTC(),
	}
	res, err := r.db.Collection(projectsColl).InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	d.ID = res.InsertedID.(primitive.ObjectID)
	p := d.toDomain()
	return &p, nil
}

// UpdateProject applies a partial update and returns the new state.
func (r *Repo) UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		if !upd.Category.Valid() {
			return nil, fmt.Errorf("invalid category %q", *upd.Category)
		}
		set["category"] = string(*upd.Category)
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.ProjectURL != nil {
		set["projectUrl"] = *upd.ProjectURL
	}

	if len(set) == 0 {
		return r.Project(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d projectDoc
	err = r.db.Collection(projectsColl).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).
		Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	p := d.toDomain()
	return &p, nil
}

// DeleteProject removes the project and reports whether one existed.
func (r *Repo) DeleteProject(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.db.Collection(projectsColl).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return res.DeletedCount > 0, nil
}
