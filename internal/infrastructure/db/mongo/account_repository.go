package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fixserve/account-service/internal/core/domain"
)

// One collection per role keeps the stores disjoint: ids and email
// uniqueness never cross collections.
const (
	adminCollection      = "admins"
	technicianCollection = "technicians"
	userCollection       = "users"
)

// AccountRepository is a MongoDB-backed AccountStore for a single role's
// collection.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAdminStore(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(adminCollection)}
}

func NewTechnicianStore(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(technicianCollection)}
}

func NewUserStore(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index for this store's collection.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index on %s: %w", r.coll.Name(), err)
	}
	return nil
}

type mongoAccount struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	FullName           string             `bson:"full_name"`
	Email              string             `bson:"email"`
	PhoneNumber        string             `bson:"phone_number"`
	PasswordHash       string             `bson:"password_hash"`
	Address            string             `bson:"address,omitempty"`
	ProfilePhoto       string             `bson:"profile_photo,omitempty"`
	ExperienceYears    *int               `bson:"experience_years,omitempty"`
	TotalJobsCompleted int                `bson:"total_jobs_completed"`
	TotalEarnings      float64            `bson:"total_earnings"`
	CreatedAt          int64              `bson:"created_at"`
	UpdatedAt          int64              `bson:"updated_at"`
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any document in this store.
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

// Save inserts the account when it has no id yet, otherwise replaces the
// existing document in place.
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		FullName:           account.FullName,
		Email:              account.Email,
		PhoneNumber:        account.PhoneNumber,
		PasswordHash:       account.PasswordHash,
		Address:            account.Address,
		ProfilePhoto:       account.ProfilePhoto,
		ExperienceYears:    account.ExperienceYears,
		TotalJobsCompleted: account.TotalJobsCompleted,
		TotalEarnings:      account.TotalEarnings,
		CreatedAt:          account.CreatedAt.Unix(),
		UpdatedAt:          account.UpdatedAt.Unix(),
	}

	if account.ID == "" {
		res, err := r.coll.InsertOne(ctx, doc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrEmailInUse
			}
			return nil, fmt.Errorf("insert account: %w", err)
		}
		doc.ID = res.InsertedID.(primitive.ObjectID)
		return doc.toDomain(), nil
	}

	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return nil, fmt.Errorf("save account: invalid id %q", account.ID)
	}
	doc.ID = oid
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return nil, fmt.Errorf("replace account: %w", err)
	}
	return doc.toDomain(), nil
}

func (ma *mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:                 ma.ID.Hex(),
		FullName:           ma.FullName,
		Email:              ma.Email,
		PhoneNumber:        ma.PhoneNumber,
		PasswordHash:       ma.PasswordHash,
		Address:            ma.Address,
		ProfilePhoto:       ma.ProfilePhoto,
		ExperienceYears:    ma.ExperienceYears,
		TotalJobsCompleted: ma.TotalJobsCompleted,
		TotalEarnings:      ma.TotalEarnings,
		CreatedAt:          unixToTime(ma.CreatedAt),
		UpdatedAt:          unixToTime(ma.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
