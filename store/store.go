package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the API.
const (
	Products   = "product"
	Categories = "category"
	Content    = "content"
	Orders     = "order"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

// Store is a thin adapter over the Mongo document database. A nil *Store is
// valid and reports unreachable from Available, so read paths can fall back
// to built-in defaults when no database is configured.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the database and verifies it with a ping. Callers decide
// whether a failure is fatal; main logs and continues without a store.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return New(client, dbName), nil
}

// New wraps an already-connected client around the named database.
func New(client *mongo.Client, dbName string) *Store {
	return &Store{client: client, db: client.Database(dbName)}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists collections for the /test diagnostic.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, errors.New("store not connected")
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// ParseID validates identifier syntax without touching the database.
func ParseID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func (s *Store) Count(ctx context.Context, coll string) (int64, error) {
	if !s.Available() {
		return 0, errors.New("store not connected")
	}
	return s.db.Collection(coll).CountDocuments(ctx, bson.M{})
}

// InsertOne stores a document and returns its generated id as a hex string.
func (s *Store) InsertOne(ctx context.Context, coll string, doc any) (string, error) {
	if !s.Available() {
		return "", errors.New("store not connected")
	}
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store returned a non-ObjectID id")
	}
	return oid.Hex(), nil
}

// FindAll decodes every document in a collection into out, a pointer to a
// slice.
func (s *Store) FindAll(ctx context.Context, coll string, out any) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	cur, err := s.db.Collection(coll).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// FindByID decodes a single document by hex id into out.
func (s *Store) FindByID(ctx context.Context, coll, hexID string, out any) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	oid, err := ParseID(hexID)
	if err != nil {
		return err
	}
	err = s.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// FindFirst decodes the first document of a collection, used for the
// singleton content record.
func (s *Store) FindFirst(ctx context.Context, coll string, out any) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	err := s.db.Collection(coll).FindOne(ctx, bson.M{}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// FindByIDs fetches all documents whose id is in hexIDs with one $in query
// and decodes them into out, a pointer to a slice. Syntactically invalid ids
// are skipped; callers handle per-id resolution failures themselves.
func (s *Store) FindByIDs(ctx context.Context, coll string, hexIDs []string, out any) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	oids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		if oid, err := ParseID(h); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil
	}
	cur, err := s.db.Collection(coll).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// ReplaceByID overwrites a document in place, keeping its id.
func (s *Store) ReplaceByID(ctx context.Context, coll, hexID string, doc any) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	oid, err := ParseID(hexID)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(coll).ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByID(ctx context.Context, coll, hexID string) error {
	if !s.Available() {
		return errors.New("store not connected")
	}
	oid, err := ParseID(hexID)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
