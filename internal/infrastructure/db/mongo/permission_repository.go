package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

const permissionCollection = "permissions"

type MongoPermissionRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPermissionRepository(db *mongo.Database) *MongoPermissionRepository {
	return &MongoPermissionRepository{db: db, coll: db.Collection(permissionCollection)}
}

type permissionDoc struct {
	ID          int64  `bson:"_id"`
	Code        string `bson:"code"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
	Enabled     bool   `bson:"enabled"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func toPermissionDoc(p *domain.Permission) permissionDoc {
	return permissionDoc{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Enabled:     p.Enabled,
		CreatedAt:   timeToUnix(p.CreatedAt),
		UpdatedAt:   timeToUnix(p.UpdatedAt),
	}
}

func (d permissionDoc) toDomain() *domain.Permission {
	return &domain.Permission{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Enabled:     d.Enabled,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

// Save upserts the permission, assigning numeric identity on first save.
func (r *MongoPermissionRepository) Save(ctx context.Context, p *domain.Permission) (*domain.Permission, error) {
	if p.ID == 0 {
		id, err := nextID(ctx, r.db, "permission")
		if err != nil {
			return nil, err
		}
		p.ID = id
	}

	doc := toPermissionDoc(p)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPermissionExists
		}
		return nil, fmt.Errorf("save permission: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoPermissionRepository) FindByID(ctx context.Context, id int64) (*domain.Permission, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoPermissionRepository) FindByCode(ctx context.Context, code string) (*domain.Permission, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *MongoPermissionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Permission, error) {
	var doc permissionDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find permission: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoPermissionRepository) FindAll(ctx context.Context) ([]*domain.Permission, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer cursor.Close(ctx)

	var permissions []*domain.Permission
	for cursor.Next(ctx) {
		var doc permissionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode permission: %w", err)
		}
		permissions = append(permissions, doc.toDomain())
	}
	return permissions, cursor.Err()
}

func (r *MongoPermissionRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"code": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count permissions: %w", err)
	}
	return n > 0, nil
}

func (r *MongoPermissionRepository) Delete(ctx context.Context, id int64) error {
	// detach from any role that still references it; the association dies
	// with the permission, the roles themselves survive
	perm, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if perm == nil {
		return nil
	}
	if _, err := r.db.Collection(roleCollection).UpdateMany(ctx,
		bson.M{"permissions": perm.Code},
		bson.M{"$pull": bson.M{"permissions": perm.Code}},
	); err != nil {
		return fmt.Errorf("detach permission: %w", err)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return nil
}
