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

// CompanyRepository implements ports.CompanyRepository using MongoDB.
type CompanyRepository struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) ports.CompanyRepository {
	return &CompanyRepository{col: db.Collection(collectionCompanies)}
}

type companyDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	Location     string             `bson:"location"`
	ContactInfo  string             `bson:"contact_info"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *companyDoc) toDomain() *domain.Company {
	return &domain.Company{
		ID: d.ID.Hex(),
		CompanyProfile: domain.CompanyProfile{
			Name:        d.Name,
			Description: d.Description,
			Location:    d.Location,
			ContactInfo: d.ContactInfo,
		},
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// withoutHash is applied to every read that does not authenticate.
var withoutHash = options.FindOne().SetProjection(bson.M{"password_hash": 0})

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := companyDoc{
		ID:           primitive.NewObjectID(),
		Name:         c.Name,
		Description:  c.Description,
		Location:     c.Location,
		ContactInfo:  c.ContactInfo,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert company: %w", err)
	}
	c.ID = doc.ID.Hex()
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid}, withoutHash)
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CompanyRepository) UpdateProfile(ctx context.Context, id string, profile domain.CompanyProfile) (*domain.Company, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":         profile.Name,
		"description":  profile.Description,
		"location":     profile.Location,
		"contact_info": profile.ContactInfo,
		"updated_at":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password_hash": 0})

	var doc companyDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, nil
	}
	return exists(ctx, r.col, bson.M{"_id": oid})
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc companyDoc
	if err := r.col.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return doc.toDomain(), nil
}

// exists reports whether any document matches filter.
func exists(ctx context.Context, col *mongo.Collection, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	return n > 0, nil
}
