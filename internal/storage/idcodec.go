package storage

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/commercekit/shop-api/internal/domain"
)

// IDCodec translates between the public string identifiers exposed over
// HTTP and the ObjectIDs stored in documents.
type IDCodec interface {
	// Parse converts a client-supplied identifier into an ObjectID.
	// Malformed input returns domain.ErrInvalidID.
	Parse(id string) (primitive.ObjectID, error)
	// Format renders a stored ObjectID as its public string form.
	Format(id primitive.ObjectID) string
}

// NewIDCodec returns the codec for 24 character hex ObjectIDs.
func NewIDCodec() IDCodec {
	return &objectIDCodec{}
}

type objectIDCodec struct{}

func (c *objectIDCodec) Parse(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func (c *objectIDCodec) Format(id primitive.ObjectID) string {
	return id.Hex()
}
