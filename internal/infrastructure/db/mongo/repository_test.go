package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

func newMock(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func duplicateKey() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"})
}

func TestCompanyRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("create assigns an id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewCompanyRepository(mt.DB)

		c := &domain.Company{CompanyProfile: domain.CompanyProfile{Name: "Acme"}, Email: "hr@acme.test"}
		if err := repo.Create(context.Background(), c); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(c.ID); err != nil {
			mt.Fatalf("expected hex object id, got %q", c.ID)
		}
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKey())
		repo := NewCompanyRepository(mt.DB)

		err := repo.Create(context.Background(), &domain.Company{Email: "hr@acme.test"})
		if !errors.Is(err, domain.ErrEmailTaken) {
			mt.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	mt.Run("find by id decodes profile", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "test.companies", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Acme"},
			{Key: "location", Value: "Springfield"},
			{Key: "contact_info", Value: "555-0100"},
			{Key: "email", Value: "hr@acme.test"},
		}))
		repo := NewCompanyRepository(mt.DB)

		c, err := repo.FindByID(context.Background(), oid.Hex())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if c.ID != oid.Hex() || c.Name != "Acme" || c.ContactInfo != "555-0100" {
			mt.Fatalf("unexpected company: %+v", c)
		}
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.companies", mtest.FirstBatch))
		repo := NewCompanyRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, domain.ErrCompanyNotFound) {
			mt.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		repo := NewCompanyRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), "not-an-id")
		if !errors.Is(err, domain.ErrInvalidID) {
			mt.Fatalf("expected ErrInvalidID, got %v", err)
		}
		ok, err := repo.Exists(context.Background(), "not-an-id")
		if err != nil || ok {
			mt.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
		}
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewCompanyRepository(mt.DB)

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, domain.ErrCompanyNotFound) {
			mt.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})

	mt.Run("exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.companies", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))
		repo := NewCompanyRepository(mt.DB)

		ok, err := repo.Exists(context.Background(), primitive.NewObjectID().Hex())
		if err != nil || !ok {
			mt.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
		}
	})
}

func TestJobSeekerRepository_DuplicateEmail(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKey())
		repo := NewJobSeekerRepository(mt.DB)

		err := repo.Create(context.Background(), &domain.JobSeeker{Email: "ann@example.test"})
		if !errors.Is(err, domain.ErrEmailTaken) {
			mt.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestJobRepository_List(t *testing.T) {
	mt := newMock(t)

	mt.Run("expands company and tolerates a missing one", func(mt *mtest.T) {
		companyID := primitive.NewObjectID()
		posted := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		withCompany := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "company_id", Value: companyID},
			{Key: "title", Value: "Cashier"},
			{Key: "pay", Value: "$15/hr"},
			{Key: "schedule", Value: bson.A{bson.D{
				{Key: "day", Value: "Monday"},
				{Key: "time_start", Value: "09:00"},
				{Key: "time_end", Value: "17:00"},
			}}},
			{Key: "is_urgent", Value: true},
			{Key: "posted_on", Value: posted},
			{Key: "company", Value: bson.D{{Key: "_id", Value: companyID}, {Key: "name", Value: "Acme"}}},
		}
		orphan := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "company_id", Value: primitive.NewObjectID()},
			{Key: "title", Value: "Stocker"},
			{Key: "posted_on", Value: posted.Add(-time.Hour)},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.jobs", mtest.FirstBatch, withCompany, orphan))
		repo := NewJobRepository(mt.DB)

		jobs, err := repo.List(context.Background(), domain.JobFilter{UrgentOnly: true})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 {
			mt.Fatalf("expected 2 jobs, got %d", len(jobs))
		}
		first := jobs[0]
		if first.Company == nil || first.Company.Name != "Acme" || first.Company.ID != companyID.Hex() {
			mt.Fatalf("expected expanded company, got %+v", first.Company)
		}
		if len(first.Schedule) != 1 || first.Schedule[0].Day != domain.Monday || !first.IsUrgent {
			mt.Fatalf("unexpected job details: %+v", first.JobDetails)
		}
		if jobs[1].Company != nil {
			mt.Fatalf("expected nil company for orphan, got %+v", jobs[1].Company)
		}
	})

	mt.Run("malformed company filter", func(mt *mtest.T) {
		repo := NewJobRepository(mt.DB)

		_, err := repo.List(context.Background(), domain.JobFilter{CompanyID: "xyz"})
		if !errors.Is(err, domain.ErrInvalidID) {
			mt.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	mt.Run("listing not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.jobs", mtest.FirstBatch))
		repo := NewJobRepository(mt.DB)

		_, err := repo.FindListing(context.Background(), primitive.NewObjectID().Hex())
		if !errors.Is(err, domain.ErrJobNotFound) {
			mt.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobRepository_UpdateMissing(t *testing.T) {
	mt := newMock(t)

	mt.Run("update missing job", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		repo := NewJobRepository(mt.DB)

		_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), domain.JobDetails{Title: "x"}, "x")
		if !errors.Is(err, domain.ErrJobNotFound) {
			mt.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestApplicationRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate submission", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKey())
		repo := NewApplicationRepository(mt.DB)

		err := repo.Create(context.Background(), &domain.Application{
			JobID:       primitive.NewObjectID().Hex(),
			JobSeekerID: primitive.NewObjectID().Hex(),
			Status:      domain.StatusPending,
		})
		if !errors.Is(err, domain.ErrAlreadyApplied) {
			mt.Fatalf("expected ErrAlreadyApplied, got %v", err)
		}
	})

	mt.Run("update status returns appended history", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		applied := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		changed := applied.Add(time.Hour)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "job_id", Value: primitive.NewObjectID()},
			{Key: "jobseeker_id", Value: primitive.NewObjectID()},
			{Key: "status", Value: "Accepted"},
			{Key: "status_history", Value: bson.A{
				bson.D{{Key: "status", Value: "Pending"}, {Key: "changed_at", Value: applied}},
				bson.D{{Key: "status", Value: "Accepted"}, {Key: "changed_at", Value: changed}},
			}},
			{Key: "applied_on", Value: applied},
			{Key: "updated_at", Value: changed},
		}}))
		repo := NewApplicationRepository(mt.DB)

		app, err := repo.UpdateStatus(context.Background(), oid.Hex(), domain.StatusAccepted, changed)
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if app.Status != domain.StatusAccepted || len(app.StatusHistory) != 2 {
			mt.Fatalf("unexpected application: %+v", app)
		}
		if !app.StatusHistory[1].ChangedAt.Equal(changed) {
			mt.Fatalf("expected last change at %v, got %v", changed, app.StatusHistory[1].ChangedAt)
		}
	})

	mt.Run("delete owned by someone else", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewApplicationRepository(mt.DB)

		err := repo.DeleteOwned(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		if !errors.Is(err, domain.ErrApplicationNotFound) {
			mt.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})

	mt.Run("view exposes owning company", func(mt *mtest.T) {
		companyID := primitive.NewObjectID()
		seekerID := primitive.NewObjectID()
		jobID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.applications", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "job_id", Value: jobID},
			{Key: "jobseeker_id", Value: seekerID},
			{Key: "status", Value: "Pending"},
			{Key: "job", Value: bson.D{{Key: "_id", Value: jobID}, {Key: "title", Value: "Cashier"}, {Key: "company_id", Value: companyID}}},
			{Key: "jobseeker", Value: bson.D{{Key: "_id", Value: seekerID}, {Key: "name", Value: "Ann"}}},
		}))
		repo := NewApplicationRepository(mt.DB)

		view, err := repo.FindView(context.Background(), primitive.NewObjectID().Hex())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if view.JobCompanyID != companyID.Hex() || view.Job.Title != "Cashier" || view.JobSeeker.Name != "Ann" {
			mt.Fatalf("unexpected view: %+v", view)
		}
	})

	mt.Run("delete by no jobs is a no-op", func(mt *mtest.T) {
		repo := NewApplicationRepository(mt.DB)

		if err := repo.DeleteByJobs(context.Background(), nil); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSavedJobRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate save", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKey())
		repo := NewSavedJobRepository(mt.DB)

		err := repo.Create(context.Background(), &domain.SavedJob{
			JobSeekerID: primitive.NewObjectID().Hex(),
			JobID:       primitive.NewObjectID().Hex(),
		})
		if !errors.Is(err, domain.ErrAlreadySaved) {
			mt.Fatalf("expected ErrAlreadySaved, got %v", err)
		}
	})

	mt.Run("unsave missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		repo := NewSavedJobRepository(mt.DB)

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		if !errors.Is(err, domain.ErrSavedJobNotFound) {
			mt.Fatalf("expected ErrSavedJobNotFound, got %v", err)
		}
	})

	mt.Run("list keeps entries whose job is gone", func(mt *mtest.T) {
		seekerID := primitive.NewObjectID()
		jobID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.saved_jobs", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "jobseeker_id", Value: seekerID},
				{Key: "job_id", Value: jobID},
				{Key: "job", Value: bson.D{
					{Key: "_id", Value: jobID},
					{Key: "title", Value: "Cashier"},
					{Key: "company", Value: bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Acme"}}},
				}},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "jobseeker_id", Value: seekerID},
				{Key: "job_id", Value: primitive.NewObjectID()},
			},
		))
		repo := NewSavedJobRepository(mt.DB)

		views, err := repo.ListByJobSeeker(context.Background(), seekerID.Hex())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			mt.Fatalf("expected 2 entries, got %d", len(views))
		}
		if views[0].Job == nil || views[0].Job.Title != "Cashier" || views[0].Job.Company.Name != "Acme" {
			mt.Fatalf("unexpected expanded job: %+v", views[0].Job)
		}
		if views[1].Job != nil {
			mt.Fatalf("expected nil job, got %+v", views[1].Job)
		}
	})
}
