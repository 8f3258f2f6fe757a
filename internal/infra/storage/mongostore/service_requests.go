package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// ServiceRequestRepository serviceRequests collection
type ServiceRequestRepository struct {
	collection *mongo.Collection
}

func NewServiceRequestRepository(db *mongo.Database) *ServiceRequestRepository {
	return &ServiceRequestRepository{collection: db.Collection(serviceRequestsCollection)}
}

// Create stores a new service request. An empty ID is replaced by a generated key.
func (r *ServiceRequestRepository) Create(ctx context.Context, sr *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	if sr.ID == "" {
		sr.ID = uuid.NewString()
	}

	ctx, span := startSpan(ctx, "MongoCreateServiceRequest",
		attribute.String("serviceRequestID", sr.ID),
		attribute.String("referenceNumber", sr.ReferenceNumber),
	)
	defer span.End()

	if _, err := r.collection.InsertOne(ctx, toServiceRequestDocument(sr)); err != nil {
		failSpan(span, err, "Failed to insert service request")
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: CreateServiceRequest: %v", ErrQuery, err)
	}

	return sr, nil
}

// GetByID returns the service request with the given id
func (r *ServiceRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	ctx, span := startSpan(ctx, "MongoGetServiceRequestByID", attribute.String("serviceRequestID", id))
	defer span.End()

	var doc serviceRequestDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrServiceRequestNotFound
	}
	if err != nil {
		failSpan(span, err, "Failed to find service request")
		return nil, fmt.Errorf("%w: GetServiceRequestByID: %v", ErrQuery, err)
	}

	sr, err := doc.toDomain()
	if err != nil {
		failSpan(span, err, "Failed to decode service request")
		return nil, err
	}
	return sr, nil
}

func (r *ServiceRequestRepository) ListByClientID(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, "MongoListServiceRequestsByClient", bson.M{"client_id": clientID})
}

func (r *ServiceRequestRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, "MongoListServiceRequestsByMechanic", bson.M{"assigned_mechanic": mechanicID})
}

func (r *ServiceRequestRepository) ListAll(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return r.list(ctx, "MongoListServiceRequests", bson.M{})
}

// AssignMechanic sets assigned_mechanic and status on a pending request only
func (r *ServiceRequestRepository) AssignMechanic(ctx context.Context, id, mechanicID string) error {
	ctx, span := startSpan(ctx, "MongoAssignMechanic",
		attribute.String("serviceRequestID", id),
		attribute.String("mechanicID", mechanicID),
	)
	defer span.End()

	filter := bson.M{"_id": id, "status": string(domain.StatusPending)}
	update := bson.M{"$set": bson.M{
		"assigned_mechanic": mechanicID,
		"status":            string(domain.StatusAssigned),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		failSpan(span, err, "Failed to assign mechanic")
		return fmt.Errorf("%w: AssignMechanic: %v", ErrQuery, err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			failSpan(span, err, "Failed to check service request")
			return fmt.Errorf("%w: AssignMechanic - count: %v", ErrQuery, err)
		}
		if count == 0 {
			return ErrServiceRequestNotFound
		}
		return ErrAlreadyAssigned
	}

	return nil
}

func (r *ServiceRequestRepository) list(ctx context.Context, spanName string, filter bson.M) ([]*domain.ServiceRequest, error) {
	ctx, span := startSpan(ctx, spanName)
	defer span.End()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		failSpan(span, err, "Failed to find service requests")
		return nil, fmt.Errorf("%w: %s: %v", ErrQuery, spanName, err)
	}
	defer cursor.Close(ctx)

	requests := make([]*domain.ServiceRequest, 0)
	for cursor.Next(ctx) {
		var doc serviceRequestDocument
		if err := cursor.Decode(&doc); err != nil {
			failSpan(span, err, "Failed to decode service request")
			return nil, fmt.Errorf("%w: service request: %v", ErrDecode, err)
		}
		sr, err := doc.toDomain()
		if err != nil {
			failSpan(span, err, "Failed to decode service request")
			return nil, err
		}
		requests = append(requests, sr)
	}
	if err := cursor.Err(); err != nil {
		failSpan(span, err, "Cursor error")
		return nil, fmt.Errorf("%w: service requests cursor: %v", ErrQuery, err)
	}

	span.SetAttributes(attribute.Int("serviceRequestCount", len(requests)))
	return requests, nil
}
