package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

const roleCollection = "roles"

// MongoRoleRepository stores roles with their permission membership as a list
// of permission codes; documents are hydrated into full Permission values on
// read so code-based set semantics survive the round trip.
type MongoRoleRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{db: db, coll: db.Collection(roleCollection)}
}

type roleDoc struct {
	ID          int64    `bson:"_id"`
	Code        string   `bson:"code"`
	Name        string   `bson:"name"`
	Description string   `bson:"description,omitempty"`
	Enabled     bool     `bson:"enabled"`
	CreatedAt   int64    `bson:"created_at"`
	UpdatedAt   int64    `bson:"updated_at"`
	Permissions []string `bson:"permissions,omitempty"`
}

func toRoleDoc(role *domain.Role) roleDoc {
	doc := roleDoc{
		ID:          role.ID,
		Code:        role.Code,
		Name:        role.Name,
		Description: role.Description,
		Enabled:     role.Enabled,
		CreatedAt:   timeToUnix(role.CreatedAt),
		UpdatedAt:   timeToUnix(role.UpdatedAt),
	}
	for _, p := range role.Permissions {
		doc.Permissions = append(doc.Permissions, p.Code)
	}
	return doc
}

// Save upserts the role, assigning numeric identity on first save.
func (r *MongoRoleRepository) Save(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if role.ID == 0 {
		id, err := nextID(ctx, r.db, "role")
		if err != nil {
			return nil, err
		}
		role.ID = id
	}

	doc := toRoleDoc(role)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("save role: %w", err)
	}
	return r.hydrate(ctx, doc)
}

func (r *MongoRoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRoleRepository) FindByCode(ctx context.Context, code string) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *MongoRoleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Role, error) {
	var doc roleDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return r.hydrate(ctx, doc)
}

func (r *MongoRoleRepository) FindAll(ctx context.Context) ([]*domain.Role, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []*domain.Role
	for cursor.Next(ctx) {
		var doc roleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		role, err := r.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, cursor.Err()
}

func (r *MongoRoleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"code": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count roles: %w", err)
	}
	return n > 0, nil
}

// Delete removes the role and revokes it from every user still holding it.
// Users and permissions themselves are untouched: no lifecycle cascades
// across aggregates, only the association dies.
func (r *MongoRoleRepository) Delete(ctx context.Context, id int64) error {
	role, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return nil
	}

	if _, err := r.db.Collection(userCollection).UpdateMany(ctx,
		bson.M{"roles": role.Code},
		bson.M{"$pull": bson.M{"roles": role.Code}},
	); err != nil {
		return fmt.Errorf("revoke role from users: %w", err)
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// hydrate resolves the stored permission codes into Permission values.
// Codes that no longer resolve are dropped silently.
func (r *MongoRoleRepository) hydrate(ctx context.Context, doc roleDoc) (*domain.Role, error) {
	role := &domain.Role{
		ID:          doc.ID,
		Code:        doc.Code,
		Name:        doc.Name,
		Description: doc.Description,
		Enabled:     doc.Enabled,
		CreatedAt:   unixToTime(doc.CreatedAt),
		UpdatedAt:   unixToTime(doc.UpdatedAt),
	}
	if len(doc.Permissions) == 0 {
		return role, nil
	}

	cursor, err := r.db.Collection(permissionCollection).Find(ctx, bson.M{"code": bson.M{"$in": doc.Permissions}})
	if err != nil {
		return nil, fmt.Errorf("load role permissions: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var pd permissionDoc
		if err := cursor.Decode(&pd); err != nil {
			return nil, fmt.Errorf("decode permission: %w", err)
		}
		role.Permissions = append(role.Permissions, *pd.toDomain())
	}
	return role, cursor.Err()
}
