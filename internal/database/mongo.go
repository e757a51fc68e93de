package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Key fields used to match mirrored records with existing documents.
const (
	BookKey = "ISBN"
	FoodKey = "Strichcode"
)

// MirrorKey holds the derived key of records mirrored without a key field of
// their own.
const MirrorKey = "_mirrorKey"

// mirrorNamespace scopes the name-based UUIDs stored under MirrorKey.
var mirrorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("produktmanager/mirror"))

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Collection is the part of a MongoDB collection the mirror writes through.
type Collection interface {
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	ReplaceOne(ctx context.Context, filter, doc bson.M) error
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
}

// MirrorResult counts what Mirror did per record.
type MirrorResult struct {
	Total      int
	New        int
	Updated    int
	Unkeyed    int
	Collisions int
	Removed    int64
	Failed     int
}

func NewMongoDB(uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("Connected to MongoDB at %s", uri)

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// Collection returns the named collection for Mirror.
func (m *MongoDB) Collection(name string) Collection {
	return mongoCollection{m.Database.Collection(name)}
}

type mongoCollection struct {
	c *mongo.Collection
}

func (c mongoCollection) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	var doc bson.M
	if err := c.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c mongoCollection) ReplaceOne(ctx context.Context, filter, doc bson.M) error {
	_, err := c.c.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return err
}

func (c mongoCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.c.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// ToDocument converts a record into a document with the same keys the JSON
// files use. Values that are not numbers end up as null.
func ToDocument(record interface{}) (bson.M, error) {
	doc, _, err := toDocument(record)
	return doc, err
}

func toDocument(record interface{}) (bson.M, []byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	var doc bson.M
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to convert record: %w", err)
	}
	return doc, data, nil
}

// UpsertDocument replaces the document matching filter with doc, inserting it
// when there is none. Fields only present in the stored document are kept.
func UpsertDocument(coll Collection, filter, doc bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existingDoc, err := coll.FindOne(ctx, filter)

	wasUpdate := false
	finalDoc := doc

	if err == nil {
		wasUpdate = true
		finalDoc = existingDoc
		extraFieldCount := 0
		for field := range existingDoc {
			if _, ok := doc[field]; !ok && field != "_id" {
				extraFieldCount++
			}
		}
		for field, value := range doc {
			finalDoc[field] = value
		}
		if extraFieldCount > 0 {
			log.Printf("Updated existing document %v (preserved %d extra fields)", filter, extraFieldCount)
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, fmt.Errorf("failed to check existing document %v: %w", filter, err)
	}

	if err := coll.ReplaceOne(ctx, filter, finalDoc); err != nil {
		return false, fmt.Errorf("failed to upsert document %v: %w", filter, err)
	}
	return wasUpdate, nil
}

// Mirror writes every record into coll so that repeated runs converge on one
// document per record. Records are matched by keyField. Records without one,
// and later records repeating a key already seen in this run, are matched by
// a key derived from their content and stored under MirrorKey. Derived-key
// documents whose record is gone are removed.
func Mirror(coll Collection, keyField string, records []interface{}) (MirrorResult, error) {
	result := MirrorResult{Total: len(records)}
	seenKeys := make(map[string]bool)
	seenContent := make(map[string]int)
	mirrorKeys := bson.A{}

	for i, record := range records {
		if i > 0 && i%100 == 0 {
			log.Printf("Mirrored %d records...", i)
		}

		doc, data, err := toDocument(record)
		if err != nil {
			return result, err
		}

		key, _ := doc[keyField].(string)
		if key != "" && seenKeys[key] {
			log.Printf("Record %d repeats %s %s, mirroring it separately", i+1, keyField, key)
			result.Collisions++
			key = ""
		}

		var filter bson.M
		if key != "" {
			seenKeys[key] = true
			filter = bson.M{keyField: key, MirrorKey: bson.M{"$exists": false}}
		} else {
			// identical records get distinct keys by occurrence
			occurrence := seenContent[string(data)]
			seenContent[string(data)]++
			derived := uuid.NewSHA1(mirrorNamespace, []byte(fmt.Sprintf("%d\n%s", occurrence, data))).String()
			doc[MirrorKey] = derived
			mirrorKeys = append(mirrorKeys, derived)
			filter = bson.M{MirrorKey: derived}
			result.Unkeyed++
		}

		wasUpdate, err := UpsertDocument(coll, filter, doc)
		if err != nil {
			log.Printf("Failed to mirror record %d: %v", i+1, err)
			result.Failed++
			continue
		}
		if wasUpdate {
			result.Updated++
		} else {
			result.New++
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	removed, err := coll.DeleteMany(ctx, bson.M{MirrorKey: bson.M{"$exists": true, "$nin": mirrorKeys}})
	if err != nil {
		return result, fmt.Errorf("failed to remove stale documents: %w", err)
	}
	result.Removed = removed

	return result, nil
}

func (m *MongoDB) ListCollections() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	names, err := m.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
