package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// CredentialRepository credentials collection, the identity gateway's account store
type CredentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{collection: db.Collection(credentialsCollection)}
}

func (r *CredentialRepository) Create(ctx context.Context, c *domain.Credential) error {
	ctx, span := startSpan(ctx, "MongoCreateCredential")
	defer span.End()

	c.CreatedAt = time.Now().UTC()
	doc := credentialDocument{
		AccountID:    c.AccountID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		failSpan(span, err, "Failed to insert credential")
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: CreateCredential: %v", ErrQuery, err)
	}

	return nil
}

func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, span := startSpan(ctx, "MongoGetCredentialByEmail")
	defer span.End()

	var doc credentialDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		failSpan(span, err, "Failed to find credential")
		return nil, fmt.Errorf("%w: GetCredentialByEmail: %v", ErrQuery, err)
	}

	return &domain.Credential{
		AccountID:    doc.AccountID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
