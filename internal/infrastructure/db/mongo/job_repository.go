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

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) ports.JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type scheduleDoc struct {
	Day       string `bson:"day"`
	TimeStart string `bson:"time_start"`
	TimeEnd   string `bson:"time_end"`
}

type jobDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID   primitive.ObjectID `bson:"company_id"`
	Title       string             `bson:"title"`
	Pay         string             `bson:"pay"`
	Description string             `bson:"description"`
	Schedule    []scheduleDoc      `bson:"schedule"`
	IsUrgent    bool               `bson:"is_urgent"`
	Slug        string             `bson:"slug"`
	PostedOn    time.Time          `bson:"posted_on"`
}

type jobListingDoc struct {
	Job     jobDoc      `bson:",inline"`
	Company *accountRef `bson:"company,omitempty"`
}

func toScheduleDocs(entries []domain.ScheduleEntry) []scheduleDoc {
	out := make([]scheduleDoc, 0, len(entries))
	for _, e := range entries {
		out = append(out, scheduleDoc{Day: string(e.Day), TimeStart: e.TimeStart, TimeEnd: e.TimeEnd})
	}
	return out
}

func (d *jobDoc) toDomain() *domain.Job {
	schedule := make([]domain.ScheduleEntry, 0, len(d.Schedule))
	for _, e := range d.Schedule {
		schedule = append(schedule, domain.ScheduleEntry{Day: domain.Weekday(e.Day), TimeStart: e.TimeStart, TimeEnd: e.TimeEnd})
	}
	return &domain.Job{
		ID:        d.ID.Hex(),
		CompanyID: d.CompanyID.Hex(),
		JobDetails: domain.JobDetails{
			Title:       d.Title,
			Pay:         d.Pay,
			Description: d.Description,
			Schedule:    schedule,
			IsUrgent:    d.IsUrgent,
		},
		Slug:     d.Slug,
		PostedOn: d.PostedOn.UTC(),
	}
}

func (d *jobListingDoc) toDomain() *domain.JobListing {
	return &domain.JobListing{Job: d.Job.toDomain(), Company: d.Company.toDomain()}
}

// companyName expands company_id into {_id, name}.
func companyName() []bson.D {
	return lookupOne(collectionCompanies, "company_id", "company", project("name"))
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	companyID, err := objectID(j.CompanyID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		ID:          primitive.NewObjectID(),
		CompanyID:   companyID,
		Title:       j.Title,
		Pay:         j.Pay,
		Description: j.Description,
		Schedule:    toScheduleDocs(j.Schedule),
		IsUrgent:    j.IsUrgent,
		Slug:        j.Slug,
		PostedOn:    j.PostedOn,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	j.ID = doc.ID.Hex()
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) FindListing(ctx context.Context, id string) (*domain.JobListing, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	pipeline := append(mongo.Pipeline{match(bson.M{"_id": oid})}, companyName()...)
	docs, err := aggregate[jobListingDoc](ctx, r.col, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrJobNotFound
	}
	return docs[0].toDomain(), nil
}

func (r *JobRepository) List(ctx context.Context, filter domain.JobFilter) ([]*domain.JobListing, error) {
	m := bson.M{}
	if filter.CompanyID != "" {
		oid, err := objectID(filter.CompanyID)
		if err != nil {
			return nil, err
		}
		m["company_id"] = oid
	}
	if filter.UrgentOnly {
		m["is_urgent"] = true
	}

	pipeline := append(mongo.Pipeline{match(m), sortDesc("posted_on")}, companyName()...)
	docs, err := aggregate[jobListingDoc](ctx, r.col, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.JobListing, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *JobRepository) Update(ctx context.Context, id string, details domain.JobDetails, slug string) (*domain.Job, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       details.Title,
		"pay":         details.Pay,
		"description": details.Description,
		"schedule":    toScheduleDocs(details.Schedule),
		"is_urgent":   details.IsUrgent,
		"slug":        slug,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc jobDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) IDsByCompany(ctx context.Context, companyID string) ([]string, error) {
	oid, err := objectID(companyID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"company_id": oid}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find company jobs: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate company jobs: %w", err)
	}
	return ids, nil
}

func (r *JobRepository) DeleteByCompany(ctx context.Context, companyID string) error {
	oid, err := objectID(companyID)
	if err != nil {
		return err
	}

	return deleteMany(ctx, r.col, bson.M{"company_id": oid})
}
