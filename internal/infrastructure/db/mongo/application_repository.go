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

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) ports.ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

type statusChangeDoc struct {
	Status    string    `bson:"status"`
	ChangedAt time.Time `bson:"changed_at"`
}

type applicationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	JobID         primitive.ObjectID `bson:"job_id"`
	JobSeekerID   primitive.ObjectID `bson:"jobseeker_id"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	ResumeLink    string             `bson:"resume_link"`
	Address       string             `bson:"address"`
	ContactInfo   string             `bson:"contact_info"`
	Status        string             `bson:"status"`
	StatusHistory []statusChangeDoc  `bson:"status_history"`
	AppliedOn     time.Time          `bson:"applied_on"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

type jobRefDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	CompanyID primitive.ObjectID `bson:"company_id"`
	Company   *accountRef        `bson:"company,omitempty"`
}

type applicationViewDoc struct {
	Application applicationDoc `bson:",inline"`
	Job         *jobRefDoc     `bson:"job,omitempty"`
	JobSeeker   *accountRef    `bson:"jobseeker,omitempty"`
}

func (d *applicationDoc) toDomain() *domain.Application {
	history := make([]domain.StatusChange, 0, len(d.StatusHistory))
	for _, h := range d.StatusHistory {
		history = append(history, domain.StatusChange{Status: domain.ApplicationStatus(h.Status), ChangedAt: h.ChangedAt.UTC()})
	}
	return &domain.Application{
		ID:          d.ID.Hex(),
		JobID:       d.JobID.Hex(),
		JobSeekerID: d.JobSeekerID.Hex(),
		Applicant: domain.Applicant{
			Name:        d.Name,
			Description: d.Description,
			ResumeLink:  d.ResumeLink,
			Address:     d.Address,
			ContactInfo: d.ContactInfo,
		},
		Status:        domain.ApplicationStatus(d.Status),
		StatusHistory: history,
		AppliedOn:     d.AppliedOn.UTC(),
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func (d *applicationViewDoc) toDomain() *domain.ApplicationView {
	view := &domain.ApplicationView{
		Application: d.Application.toDomain(),
		JobSeeker:   d.JobSeeker.toDomain(),
	}
	if d.Job != nil {
		view.Job = &domain.JobRef{ID: d.Job.ID.Hex(), Title: d.Job.Title, Company: d.Job.Company.toDomain()}
		view.JobCompanyID = d.Job.CompanyID.Hex()
	}
	return view
}

func jobTitle(withCompany bool) []bson.D {
	inner := []bson.D{project("title", "company_id")}
	if withCompany {
		inner = append(inner, companyName()...)
	}
	return lookupOne(collectionJobs, "job_id", "job", inner...)
}

func jobSeekerName() []bson.D {
	return lookupOne(collectionJobSeekers, "jobseeker_id", "jobseeker", project("name"))
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	jobID, err := objectID(a.JobID)
	if err != nil {
		return err
	}
	jobSeekerID, err := objectID(a.JobSeekerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	history := make([]statusChangeDoc, 0, len(a.StatusHistory))
	for _, h := range a.StatusHistory {
		history = append(history, statusChangeDoc{Status: string(h.Status), ChangedAt: h.ChangedAt})
	}
	doc := applicationDoc{
		ID:            primitive.NewObjectID(),
		JobID:         jobID,
		JobSeekerID:   jobSeekerID,
		Name:          a.Name,
		Description:   a.Description,
		ResumeLink:    a.ResumeLink,
		Address:       a.Address,
		ContactInfo:   a.ContactInfo,
		Status:        string(a.Status),
		StatusHistory: history,
		AppliedOn:     a.AppliedOn,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	a.ID = doc.ID.Hex()
	return nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, jobID, jobSeekerID string) (bool, error) {
	job, err := objectID(jobID)
	if err != nil {
		return false, err
	}
	seeker, err := objectID(jobSeekerID)
	if err != nil {
		return false, err
	}
	return exists(ctx, r.col, bson.M{"job_id": job, "jobseeker_id": seeker})
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) FindView(ctx context.Context, id string) (*domain.ApplicationView, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{match(bson.M{"_id": oid})}
	pipeline = append(pipeline, jobTitle(false)...)
	pipeline = append(pipeline, jobSeekerName()...)

	docs, err := aggregate[applicationViewDoc](ctx, r.col, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrApplicationNotFound
	}
	return docs[0].toDomain(), nil
}

func (r *ApplicationRepository) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]*domain.ApplicationView, error) {
	oid, err := objectID(jobSeekerID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{match(bson.M{"jobseeker_id": oid}), sortDesc("created_at")}
	pipeline = append(pipeline, jobTitle(true)...)
	return r.listViews(ctx, pipeline)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.ApplicationView, error) {
	oid, err := objectID(jobID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{match(bson.M{"job_id": oid}), sortDesc("applied_on")}
	pipeline = append(pipeline, jobSeekerName()...)
	return r.listViews(ctx, pipeline)
}

func (r *ApplicationRepository) listViews(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.ApplicationView, error) {
	docs, err := aggregate[applicationViewDoc](ctx, r.col, pipeline)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.ApplicationView, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// UpdateStatus sets the status and appends to status_history in a single
// document update.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, at time.Time) (*domain.Application, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     string(status),
			"updated_at": at,
		},
		"$push": bson.M{
			"status_history": statusChangeDoc{Status: string(status), ChangedAt: at},
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc applicationDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) DeleteOwned(ctx context.Context, id, jobSeekerID string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	seeker, err := objectID(jobSeekerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "jobseeker_id": seeker})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) DeleteByJobs(ctx context.Context, jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	oids, err := objectIDs(jobIDs)
	if err != nil {
		return err
	}
	return deleteMany(ctx, r.col, bson.M{"job_id": bson.M{"$in": oids}})
}

func (r *ApplicationRepository) DeleteByJobSeeker(ctx context.Context, jobSeekerID string) error {
	oid, err := objectID(jobSeekerID)
	if err != nil {
		return err
	}
	return deleteMany(ctx, r.col, bson.M{"jobseeker_id": oid})
}

func deleteMany(ctx context.Context, col *mongo.Collection, filter bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("delete from %s: %w", col.Name(), err)
	}
	return nil
}
