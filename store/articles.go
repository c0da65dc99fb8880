package store

import (
	"context"
	"fmt"
	"time"

	"newshub-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "articles"

// ArticleStore is a MongoDB-backed collection of articles. One instance is
// created at startup and shared by the HTTP handlers and the scheduler.
type ArticleStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect dials MongoDB, pings it, and returns a store over the articles
// collection of the given database.
func Connect(ctx context.Context, uri, database string) (*ArticleStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &ArticleStore{
		client:     client,
		collection: client.Database(database).Collection(collectionName),
	}, nil
}

// Close disconnects the underlying client.
func (s *ArticleStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// List returns every stored article in storage order.
func (s *ArticleStore) List(ctx context.Context) ([]models.Article, error) {
	cur, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Article{}
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			continue
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// Insert stores a single article.
func (s *ArticleStore) Insert(ctx context.Context, article models.Article) error {
	if _, err := s.collection.InsertOne(ctx, article); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// ReplaceAll deletes every stored article and then inserts the given set.
// The two steps are strictly ordered but not transactional: a concurrent
// reader may observe an empty collection in between.
func (s *ArticleStore) ReplaceAll(ctx context.Context, articles []models.Article) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete articles: %w", err)
	}

	docs := make([]interface{}, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, a)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert articles: %w", err)
	}
	return nil
}

// Count reports the number of stored articles.
func (s *ArticleStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

// Ping checks connectivity to the database.
func (s *ArticleStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
