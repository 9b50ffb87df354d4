package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

const termsCollection = "terms"

type MongoTermsRepository struct {
	coll *mongo.Collection
}

func NewTermsRepository(db *mongo.Database) *MongoTermsRepository {
	return &MongoTermsRepository{coll: db.Collection(termsCollection)}
}

type mongoTerms struct {
	Language             string `bson:"_id"`
	Introduction         string `bson:"introduction"`
	Services             string `bson:"services"`
	UserResponsibilities string `bson:"user_responsibilities"`
	Payments             string `bson:"payments"`
	Liability            string `bson:"liability"`
	Termination          string `bson:"termination"`
	Changes              string `bson:"changes"`
	Contact              string `bson:"contact"`
}

func (r *MongoTermsRepository) FindByLanguage(ctx context.Context, lang string) (*domain.Terms, error) {
	var mt mongoTerms
	if err := r.coll.FindOne(ctx, bson.M{"_id": lang}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTermsNotFound
		}
		return nil, fmt.Errorf("find terms: %w", err)
	}

	return &domain.Terms{
		Language:             mt.Language,
		Introduction:         mt.Introduction,
		Services:             mt.Services,
		UserResponsibilities: mt.UserResponsibilities,
		Payments:             mt.Payments,
		Liability:            mt.Liability,
		Termination:          mt.Termination,
		Changes:              mt.Changes,
		Contact:              mt.Contact,
	}, nil
}
