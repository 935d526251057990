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

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

// JobSeekerRepository implements ports.JobSeekerRepository using MongoDB.
type JobSeekerRepository struct {
	col *mongo.Collection
}

func NewJobSeekerRepository(db *mongo.Database) ports.JobSeekerRepository {
	return &JobSeekerRepository{col: db.Collection(collectionJobSeekers)}
}

type jobSeekerDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Description  string             `bson:"description"`
	ResumeLink   string             `bson:"resume_link"`
	Address      string             `bson:"address"`
	ContactInfo  string             `bson:"contact_info"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *jobSeekerDoc) toDomain() *domain.JobSeeker {
	return &domain.JobSeeker{
		ID: d.ID.Hex(),
		JobSeekerProfile: domain.JobSeekerProfile{
			Name:        d.Name,
			Description: d.Description,
			ResumeLink:  d.ResumeLink,
			Address:     d.Address,
			ContactInfo: d.ContactInfo,
		},
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func (r *JobSeekerRepository) Create(ctx context.Context, js *domain.JobSeeker) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobSeekerDoc{
		ID:           primitive.NewObjectID(),
		Name:         js.Name,
		Email:        js.Email,
		Description:  js.Description,
		ResumeLink:   js.ResumeLink,
		Address:      js.Address,
		ContactInfo:  js.ContactInfo,
		PasswordHash: js.PasswordHash,
		CreatedAt:    js.CreatedAt,
		UpdatedAt:    js.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert job seeker: %w", err)
	}
	js.ID = doc.ID.Hex()
	return nil
}

func (r *JobSeekerRepository) FindByID(ctx context.Context, id string) (*domain.JobSeeker, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid}, withoutHash)
}

func (r *JobSeekerRepository) FindByEmail(ctx context.Context, email string) (*domain.JobSeeker, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *JobSeekerRepository) UpdateProfile(ctx context.Context, id string, profile domain.JobSeekerProfile) (*domain.JobSeeker, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         profile.Name,
		"description":  profile.Description,
		"resume_link":  profile.ResumeLink,
		"address":      profile.Address,
		"contact_info": profile.ContactInfo,
		"updated_at":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password_hash": 0})

	var doc jobSeekerDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobSeekerNotFound
		}
		return nil, fmt.Errorf("update job seeker: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobSeekerRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job seeker: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobSeekerNotFound
	}
	return nil
}

func (r *JobSeekerRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}
	return exists(ctx, r.col, bson.M{"_id": oid})
}

func (r *JobSeekerRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*domain.JobSeeker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobSeekerDoc
	if err := r.col.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobSeekerNotFound
		}
		return nil, fmt.Errorf("find job seeker: %w", err)
	}
	return doc.toDomain(), nil
}
