package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devsocial/social-api/internal/core/domain"
)

const postsCollection = "posts"

// PostRepository persists posts. Like and comment mutations are single
// guarded update expressions: the filter encodes the precondition (like
// absent, like present, comment present) so that concurrent requests on the
// same post cannot lose an update or produce duplicates.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	post.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return nil, storageErr("insert post", err)
	}
	return post, nil
}

// FindAll returns every post, newest first.
func (r *PostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, storageErr("list posts", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, storageErr("decode posts", err)
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var post domain.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, storageErr("find post", err)
	}
	return &post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storageErr("delete post", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return storageErr("delete posts by user", err)
	}
	return nil
}

// AddLike atomically inserts the like at the head of the sequence, guarded
// on the caller not already appearing in it.
func (r *PostRepository) AddLike(ctx context.Context, postID string, like domain.Like) ([]domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": postID, "likes.user": bson.M{"$ne": like.UserID}}
	update := bson.M{"$push": bson.M{"likes": bson.M{"$each": bson.A{like}, "$position": 0}}}

	post, err := r.findAndUpdate(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Guard failed: either the post is gone or the like exists.
			if _, findErr := r.FindByID(ctx, postID); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrAlreadyLiked
		}
		return nil, storageErr("add like", err)
	}
	return post.Likes, nil
}

// RemoveLike atomically removes the caller's like, guarded on its presence.
func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": postID, "likes.user": userID}
	update := bson.M{"$pull": bson.M{"likes": bson.M{"user": userID}}}

	post, err := r.findAndUpdate(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if _, findErr := r.FindByID(ctx, postID); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrNotLiked
		}
		return nil, storageErr("remove like", err)
	}
	return post.Likes, nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID string, comment domain.Comment) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": postID}
	update := bson.M{"$push": bson.M{"comments": bson.M{"$each": bson.A{comment}, "$position": 0}}}

	post, err := r.findAndUpdate(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, storageErr("add comment", err)
	}
	return post.Comments, nil
}

// RemoveComment pulls the comment addressed by its own id; the filter
// requires the id to be present so absence is an explicit failure.
func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID string) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": postID, "comments.id": commentID}
	update := bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}}

	post, err := r.findAndUpdate(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if _, findErr := r.FindByID(ctx, postID); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrCommentNotFound
		}
		return nil, storageErr("remove comment", err)
	}
	return post.Comments, nil
}

func (r *PostRepository) findAndUpdate(ctx context.Context, filter, update bson.M) (*domain.Post, error) {
	var post domain.Post
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// EnsureIndexes creates the author index used by the feed and the cascade.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
