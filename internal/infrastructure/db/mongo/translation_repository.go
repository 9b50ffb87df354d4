package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

const (
	languagesCollection    = "languages"
	translationsCollection = "translations"
)

type MongoTranslationRepository struct {
	languages    *mongo.Collection
	translations *mongo.Collection
}

func NewTranslationRepository(db *mongo.Database) *MongoTranslationRepository {
	return &MongoTranslationRepository{
		languages:    db.Collection(languagesCollection),
		translations: db.Collection(translationsCollection),
	}
}

type mongoLanguage struct {
	Code  string `bson:"_id"`
	Name  string `bson:"name"`
	Flag  string `bson:"flag"`
	Order int    `bson:"order"`
}

type mongoTranslationTable struct {
	Language string            `bson:"_id"`
	Messages map[string]string `bson:"messages"`
}

func (r *MongoTranslationRepository) SupportedLanguages(ctx context.Context) ([]domain.Language, error) {
	cur, err := r.languages.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer cur.Close(ctx)

	var langs []domain.Language
	for cur.Next(ctx) {
		var ml mongoLanguage
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode language: %w", err)
		}
		langs = append(langs, domain.Language{Code: ml.Code, Name: ml.Name, Flag: ml.Flag})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}
	return langs, nil
}

func (r *MongoTranslationRepository) FindTable(ctx context.Context, lang string) (*domain.TranslationTable, error) {
	var mt mongoTranslationTable
	if err := r.translations.FindOne(ctx, bson.M{"_id": lang}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLanguageNotSupported
		}
		return nil, fmt.Errorf("find translation table: %w", err)
	}
	return &domain.TranslationTable{Language: mt.Language, Messages: mt.Messages}, nil
}
