package repositories

import (
	"context"

	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPostNotFound is returned when no stored post has the given id.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the interface for seed post operations
type PostRepository interface {
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	ReplacePosts(ctx context.Context, posts []models.Post) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// GetAllPosts retrieves every post, newest first
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ReplacePosts drops the stored posts and inserts the given ones
func (r *MongoPostRepository) ReplacePosts(ctx context.Context, posts []models.Post) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return errors.Wrap(err, "clear posts")
	}
	if len(posts) == 0 {
		return nil
	}
	docs := make([]interface{}, len(posts))
	for i := range posts {
		docs[i] = posts[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return errors.Wrap(err, "insert posts")
}
