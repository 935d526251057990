package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// lookupOne joins the document of collection from whose _id equals the
// value of localField, runs inner on it and unwinds the result into field as.
// The field is left absent when the referent no longer exists.
func lookupOne(from, localField, as string, inner ...bson.D) []bson.D {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$eq", Value: bson.A{"$_id", "$$ref"}},
		}}}}},
	}
	for _, stage := range inner {
		pipeline = append(pipeline, stage)
	}

	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "let", Value: bson.D{{Key: "ref", Value: "$" + localField}}},
			{Key: "pipeline", Value: pipeline},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func match(filter bson.M) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

func sortDesc(field string) bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: field, Value: -1}}}}
}

func project(fields ...string) bson.D {
	spec := make(bson.D, 0, len(fields))
	for _, f := range fields {
		spec = append(spec, bson.E{Key: f, Value: 1})
	}
	return bson.D{{Key: "$project", Value: spec}}
}

// aggregate runs pipeline on col and decodes every result into T.
func aggregate[T any](ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return out, nil
}
