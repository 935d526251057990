package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexSpecs lists every index the repositories rely on. The unique ones are
// what make duplicate emails, applications and saves impossible under
// concurrent writes.
var indexSpecs = map[string][]mongo.IndexModel{
	collectionCompanies: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
	},
	collectionJobSeekers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
	},
	collectionJobs: {
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "posted_on", Value: -1}}},
		{Keys: bson.D{{Key: "posted_on", Value: -1}}},
	},
	collectionApplications: {
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "jobseeker_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_job_jobseeker"),
		},
		{Keys: bson.D{{Key: "jobseeker_id", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	collectionSavedJobs: {
		{
			Keys:    bson.D{{Key: "jobseeker_id", Value: 1}, {Key: "job_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_jobseeker_job"),
		},
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
	},
}

// EnsureIndexes creates the indexes of every collection. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for coll, models := range indexSpecs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
