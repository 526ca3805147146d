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

type messageDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Email   string             `bson:"email"`
	Subject string             `bson:"subject"`
	Body    string             `bson:"message"`
	SentAt  time.Time          `bson:"sentAt"`
}

func (d messageDoc) toDomain() domain.Message {
	return domain.Message{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Email:   d.Email,
		Subject: d.Subject,
		Body:    d.Body,
		SentAt:  d.SentAt,
	}
}

// CreateMessage inserts a contact message.
func (r *Repo) CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	d := messageDoc{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
		SentAt:  time.Now().UTC(),
	}
	res, err := r.db.Collection(messagesColl).InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	d.ID = res.InsertedID.(primitive.ObjectID)
	m := d.toDomain()
	return &m, nil
}

// ListMessages returns all stored messages, newest first.
func (r *Repo) ListMessages(ctx context.Context) ([]domain.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}})
	cur, err := r.db.Collection(messagesColl).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Message, 0, 16)
	for cur.Next(ctx) {
		var d messageDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return out, nil
}

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

// CreateUser inserts a user record.
func (r *Repo) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	d := userDoc{Username: username, Password: password}
	res, err := r.db.Collection(usersColl).InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return &domain.User{ID: d.ID.Hex(), Username: d.Username, Password: d.Password}, nil
}

// UserByUsername returns the first user with the given username.
func (r *Repo) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var d userDoc
	err := r.db.Collection(usersColl).FindOne(ctx, bson.M{"username": username}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &domain.User{ID: d.ID.Hex(), Username: d.Username, Password: d.Password}, nil
}
