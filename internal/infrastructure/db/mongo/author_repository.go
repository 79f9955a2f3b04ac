package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ujsag/newspress/internal/core/domain"
)

const (
	collectionAuthors = "authors"
	sequenceAuthors   = "author_id"
)

type AuthorRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{db: db, col: db.Collection(collectionAuthors)}
}

func (r *AuthorRepository) List(ctx context.Context) ([]*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	authors := []*domain.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id int) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Author
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByIDs returns the authors matching ids, keyed by id.
func (r *AuthorRepository) FindByIDs(ctx context.Context, ids []int) (map[int]*domain.Author, error) {
	out := make(map[int]*domain.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var a domain.Author
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out[a.ID] = &a
	}
	return out, cur.Err()
}

func (r *AuthorRepository) Insert(ctx context.Context, a *domain.Author) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

// NextID reserves the next value of the author id sequence.
func (r *AuthorRepository) NextID(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.db, sequenceAuthors)
}

// EnsureIndexes creates necessary indexes on the authors collection.
func (r *AuthorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
