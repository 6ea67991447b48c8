package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zhourui392/cursor-ddd-test/internal/core/domain"
)

const userCollection = "users"

// MongoUserRepository stores users with their role membership as a list of
// role codes. The user document owns the membership relation; the referenced
// roles live in their own collection and are joined on read.
type MongoUserRepository struct {
	db    *mongo.Database
	coll  *mongo.Collection
	roles *MongoRoleRepository
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		db:    db,
		coll:  db.Collection(userCollection),
		roles: NewRoleRepository(db),
	}
}

type userDoc struct {
	ID           int64    `bson:"_id"`
	Username     string   `bson:"username"`
	PasswordHash string   `bson:"password_hash"`
	Nickname     string   `bson:"nickname,omitempty"`
	Email        string   `bson:"email,omitempty"`
	Phone        string   `bson:"phone,omitempty"`
	Enabled      bool     `bson:"enabled"`
	CreatedAt    int64    `bson:"created_at"`
	UpdatedAt    int64    `bson:"updated_at"`
	LastLoginAt  int64    `bson:"last_login_at,omitempty"`
	Roles        []string `bson:"roles,omitempty"`
}

func toUserDoc(user *domain.User) userDoc {
	doc := userDoc{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Nickname:     user.Nickname,
		Email:        user.Email.String(),
		Phone:        user.Phone.String(),
		Enabled:      user.Enabled,
		CreatedAt:    timeToUnix(user.CreatedAt),
		UpdatedAt:    timeToUnix(user.UpdatedAt),
		LastLoginAt:  timeToUnix(user.LastLoginAt),
	}
	for _, r := range user.Roles {
		doc.Roles = append(doc.Roles, r.Code)
	}
	return doc
}

// Save upserts the user, assigning numeric identity on first save. The whole
// aggregate (profile plus role membership) is replaced in one document write,
// which is the transaction boundary role assignment relies on.
func (r *MongoUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == 0 {
		id, err := nextID(ctx, r.db, "user")
		if err != nil {
			return nil, err
		}
		user.ID = id
	}

	doc := toUserDoc(user)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("save user: %w", err)
	}
	return r.hydrate(ctx, doc)
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return r.hydrate(ctx, doc)
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		user, err := r.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, cursor.Err()
}

func (r *MongoUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// Delete removes the user document only. Roles and permissions are shared
// references and survive.
func (r *MongoUserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// hydrate rebuilds the aggregate, resolving role codes into full roles with
// their permissions. Stored email/phone are trusted: they were validated at
// construction, so a decode failure here means corrupted data and is surfaced.
func (r *MongoUserRepository) hydrate(ctx context.Context, doc userDoc) (*domain.User, error) {
	email, err := domain.NewEmail(doc.Email)
	if err != nil {
		return nil, fmt.Errorf("stored email for %s: %w", doc.Username, err)
	}
	phone, err := domain.NewPhone(doc.Phone)
	if err != nil {
		return nil, fmt.Errorf("stored phone for %s: %w", doc.Username, err)
	}

	user := &domain.User{
		ID:           doc.ID,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Nickname:     doc.Nickname,
		Email:        email,
		Phone:        phone,
		Enabled:      doc.Enabled,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
		LastLoginAt:  unixToTime(doc.LastLoginAt),
	}

	for _, code := range doc.Roles {
		role, err := r.roles.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if role == nil {
			// role deleted since the membership was written; skip
			continue
		}
		user.Roles = append(user.Roles, *role)
	}
	return user, nil
}
