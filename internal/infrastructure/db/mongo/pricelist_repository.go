package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

const pricelistCollection = "price_items"

type MongoPricelistRepository struct {
	coll *mongo.Collection
}

func NewPricelistRepository(db *mongo.Database) *MongoPricelistRepository {
	return &MongoPricelistRepository{coll: db.Collection(pricelistCollection)}
}

type mongoPriceItem struct {
	ID             string   `bson:"_id"`
	UserID         string   `bson:"user_id"`
	ArticleNo      string   `bson:"article_no"`
	ProductService string   `bson:"product_service"`
	InPrice        *float64 `bson:"in_price,omitempty"`
	Price          *float64 `bson:"price,omitempty"`
	Unit           *string  `bson:"unit,omitempty"`
	InStock        *int64   `bson:"in_stock,omitempty"`
	Description    *string  `bson:"description,omitempty"`
	CreatedAt      int64    `bson:"created_at"`
	UpdatedAt      int64    `bson:"updated_at"`
}

func (r *MongoPricelistRepository) List(ctx context.Context, userID, search string) ([]domain.PriceItem, error) {
	filter := bson.M{"user_id": userID}
	if search != "" {
		pattern := primitiveRegex(search)
		filter["$or"] = bson.A{
			bson.M{"article_no": pattern},
			bson.M{"product_service": pattern},
		}
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "article_no", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list price items: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.PriceItem
	for cur.Next(ctx) {
		var mi mongoPriceItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode price item: %w", err)
		}
		items = append(items, toDomainItem(mi))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate price items: %w", err)
	}
	return items, nil
}

func (r *MongoPricelistRepository) FindByArticleNo(ctx context.Context, userID, articleNo string) (*domain.PriceItem, error) {
	var mi mongoPriceItem
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "article_no": articleNo}).Decode(&mi)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find price item: %w", err)
	}
	item := toDomainItem(mi)
	return &item, nil
}

func (r *MongoPricelistRepository) Create(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error) {
	doc := toMongoItem(userID, item)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateArticle
		}
		return nil, fmt.Errorf("insert price item: %w", err)
	}
	return item, nil
}

func (r *MongoPricelistRepository) Update(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error) {
	doc := toMongoItem(userID, item)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID, "user_id": userID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateArticle
		}
		return nil, fmt.Errorf("update price item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (r *MongoPricelistRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete price item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// EnsureIndexes creates the unique (user_id, article_no) index that
// backs duplicate-article detection.
func (r *MongoPricelistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "article_no", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure pricelist indexes: %w", err)
	}
	return nil
}

// primitiveRegex builds a case-insensitive substring matcher, escaping
// user input so search text is never interpreted as a pattern.
func primitiveRegex(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}

func toMongoItem(userID string, item *domain.PriceItem) mongoPriceItem {
	return mongoPriceItem{
		ID:             item.ID,
		UserID:         userID,
		ArticleNo:      item.ArticleNo,
		ProductService: item.ProductService,
		InPrice:        item.InPrice,
		Price:          item.Price,
		Unit:           item.Unit,
		InStock:        item.InStock,
		Description:    item.Description,
		CreatedAt:      item.CreatedAt.Unix(),
		UpdatedAt:      item.UpdatedAt.Unix(),
	}
}

func toDomainItem(mi mongoPriceItem) domain.PriceItem {
	return domain.PriceItem{
		ID:             mi.ID,
		ArticleNo:      mi.ArticleNo,
		ProductService: mi.ProductService,
		InPrice:        mi.InPrice,
		Price:          mi.Price,
		Unit:           mi.Unit,
		InStock:        mi.InStock,
		Description:    mi.Description,
		CreatedAt:      unixToTime(mi.CreatedAt),
		UpdatedAt:      unixToTime(mi.UpdatedAt),
	}
}
