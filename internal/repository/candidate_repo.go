package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewd/internal/model"
)

// CandidatesCollection is the MongoDB collection holding candidate records
const CandidatesCollection = "candidates"

// ErrInvalidID is returned for ids that are not ObjectID hex strings
var ErrInvalidID = errors.New("invalid id")

// CandidateRepo handles MongoDB operations for candidates
type CandidateRepo interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	Find(ctx context.Context, email string) ([]*model.Candidate, error)
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	Update(ctx context.Context, id string, update *model.CandidateUpdate) (*model.Candidate, error)
	AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Candidate, error)
	Delete(ctx context.Context, id string) error
	FindDuplicates(ctx context.Context) ([]model.Candidate, error)
}

type candidateRepo struct {
	collection *mongo.Collection
}

// NewCandidateRepo creates a new candidate repository
func NewCandidateRepo(db *mongo.Database) CandidateRepo {
	return &candidateRepo{
		collection: db.Collection(CandidatesCollection),
	}
}

// EnsureCandidateIndexes creates the lookup indexes. Email is deliberately not
// unique: historical duplicates are collapsed by the cleanup job instead.
func EnsureCandidateIndexes(ctx context.Context, db *mongo.Database) {
	coll := db.Collection(CandidatesCollection)
	createIndex(ctx, coll, bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}, false)
	createIndex(ctx, coll, bson.D{{Key: "score", Value: -1}}, false)
	log.Info().Msg("candidate indexes ensured")
}

func createIndex(ctx context.Context, coll *mongo.Collection, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts}); err != nil {
		log.Warn().Err(err).Str("collection", coll.Name()).Msg("failed to create index")
	}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *model.Candidate) error {
	now := time.Now().UTC()
	candidate.ID = ""
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, candidate)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		candidate.ID = oid.Hex()
	}
	return nil
}

func (r *candidateRepo) Find(ctx context.Context, email string) ([]*model.Candidate, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	candidates := []*model.Candidate{}
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var candidate model.Candidate
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&candidate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Update applies the non-nil fields of update and returns the updated record,
// or nil when no candidate has that id.
func (r *candidateRepo) Update(ctx context.Context, id string, update *model.CandidateUpdate) (*model.Candidate, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": setFields(update)})
}

func (r *candidateRepo) AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Candidate, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOneAndUpdate(ctx, oid, bson.M{
		"$push": bson.M{"answers": answer},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *candidateRepo) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M) (*model.Candidate, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var candidate model.Candidate
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&candidate)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// FindDuplicates returns every candidate whose normalised email is shared with
// at least one other candidate.
func (r *candidateRepo) FindDuplicates(ctx context.Context) ([]model.Candidate, error) {
	normalizedEmail := bson.D{{Key: "$trim", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$toLower", Value: "$email"}}},
	}}}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: normalizedEmail},
			{Key: "docs", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
		{{Key: "$unwind", Value: "$docs"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$docs"}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []model.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func setFields(u *model.CandidateUpdate) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.Score != nil {
		set["score"] = *u.Score
	}
	if u.Summary != nil {
		set["summary"] = *u.Summary
	}
	if u.Answers != nil {
		set["answers"] = *u.Answers
	}
	return set
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
