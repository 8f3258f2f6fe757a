package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// UserRepository users collection
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

// Create writes the user under the id issued by the identity gateway
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, span := startSpan(ctx, "MongoCreateUser", attribute.String("userID", u.ID))
	defer span.End()

	if _, err := r.collection.InsertOne(ctx, toUserDocument(u)); err != nil {
		failSpan(span, err, "Failed to insert user")
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: CreateUser: %v", ErrQuery, err)
	}

	return nil
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := startSpan(ctx, "MongoGetUserByID", attribute.String("userID", id))
	defer span.End()

	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		failSpan(span, err, "Failed to find user")
		return nil, fmt.Errorf("%w: GetUserByID: %v", ErrQuery, err)
	}

	return doc.toDomain(), nil
}

// GetAll full scan of the users collection
func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := startSpan(ctx, "MongoGetAllUsers")
	defer span.End()

	users, err := r.find(ctx, bson.M{})
	if err != nil {
		failSpan(span, err, "Failed to list users")
		return nil, err
	}

	span.SetAttributes(attribute.Int("userCount", len(users)))
	return users, nil
}

// GetByRole returns users holding the given role
func (r *UserRepository) GetByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	ctx, span := startSpan(ctx, "MongoGetUsersByRole", attribute.String("role", string(role)))
	defer span.End()

	users, err := r.find(ctx, bson.M{"role": string(role)})
	if err != nil {
		failSpan(span, err, "Failed to list users by role")
		return nil, err
	}

	span.SetAttributes(attribute.Int("userCount", len(users)))
	return users, nil
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "surname", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find users: %v", ErrQuery, err)
	}
	defer cursor.Close(ctx)

	users := make([]*domain.User, 0)
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: user: %v", ErrDecode, err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: users cursor: %v", ErrQuery, err)
	}

	return users, nil
}
