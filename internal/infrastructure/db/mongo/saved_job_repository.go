package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

// SavedJobRepository implements ports.SavedJobRepository using MongoDB.
type SavedJobRepository struct {
	col *mongo.Collection
}

func NewSavedJobRepository(db *mongo.Database) ports.SavedJobRepository {
	return &SavedJobRepository{col: db.Collection(collectionSavedJobs)}
}

type savedJobDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobSeekerID primitive.ObjectID `bson:"jobseeker_id"`
	JobID       primitive.ObjectID `bson:"job_id"`
	SavedOn     time.Time          `bson:"saved_on"`
}

type savedJobViewDoc struct {
	Saved savedJobDoc    `bson:",inline"`
	Job   *jobListingDoc `bson:"job,omitempty"`
}

func (d *savedJobDoc) toDomain() *domain.SavedJob {
	return &domain.SavedJob{
		ID:          d.ID.Hex(),
		JobSeekerID: d.JobSeekerID.Hex(),
		JobID:       d.JobID.Hex(),
		SavedOn:     d.SavedOn.UTC(),
	}
}

func (d *savedJobViewDoc) toDomain() *domain.SavedJobView {
	view := &domain.SavedJobView{SavedJob: d.Saved.toDomain()}
	if d.Job != nil {
		view.Job = d.Job.toDomain()
	}
	return view
}

func pairFilter(jobSeekerID, jobID string) (bson.M, error) {
	seeker, err := objectID(jobSeekerID)
	if err != nil {
		return nil, err
	}
	job, err := objectID(jobID)
	if err != nil {
		return nil, err
	}
	return bson.M{"jobseeker_id": seeker, "job_id": job}, nil
}

func (r *SavedJobRepository) Create(ctx context.Context, s *domain.SavedJob) error {
	seeker, err := objectID(s.JobSeekerID)
	if err != nil {
		return err
	}
	job, err := objectID(s.JobID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := savedJobDoc{
		ID:          primitive.NewObjectID(),
		JobSeekerID: seeker,
		JobID:       job,
		SavedOn:     s.SavedOn,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadySaved
		}
		return fmt.Errorf("insert saved job: %w", err)
	}
	s.ID = doc.ID.Hex()
	return nil
}

func (r *SavedJobRepository) Find(ctx context.Context, jobSeekerID, jobID string) (*domain.SavedJob, error) {
	filter, err := pairFilter(jobSeekerID, jobID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc savedJobDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSavedJobNotFound
		}
		return nil, fmt.Errorf("find saved job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SavedJobRepository) Delete(ctx context.Context, jobSeekerID, jobID string) error {
	filter, err := pairFilter(jobSeekerID, jobID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSavedJobNotFound
	}
	return nil
}

// ListByJobSeeker expands every saved job with its company name. Entries
// whose job is gone are returned with a nil Job.
func (r *SavedJobRepository) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]*domain.SavedJobView, error) {
	oid, err := objectID(jobSeekerID)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{match(bson.M{"jobseeker_id": oid}), sortDesc("saved_on")}
	pipeline = append(pipeline, lookupOne(collectionJobs, "job_id", "job", companyName()...)...)

	docs, err := aggregate[savedJobViewDoc](ctx, r.col, pipeline)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.SavedJobView, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *SavedJobRepository) DeleteByJobs(ctx context.Context, jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	oids, err := objectIDs(jobIDs)
	if err != nil {
		return err
	}
	return deleteMany(ctx, r.col, bson.M{"job_id": bson.M{"$in": oids}})
}

func (r *SavedJobRepository) DeleteByJobSeeker(ctx context.Context, jobSeekerID string) error {
	oid, err := objectID(jobSeekerID)
	if err != nil {
		return err
	}
	return deleteMany(ctx, r.col, bson.M{"jobseeker_id": oid})
}
