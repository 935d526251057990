package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// objectID parses a hex id; anything malformed is domain.ErrInvalidID.
func objectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func objectIDs(hexes []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := objectID(h)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// accountRef is the projection of an expanded account reference.
type accountRef struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

func (a *accountRef) toDomain() *domain.AccountRef {
	if a == nil {
		return nil
	}
	return &domain.AccountRef{ID: a.ID.Hex(), Name: a.Name}
}
