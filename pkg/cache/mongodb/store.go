// Package mongodb stores cache artifacts in a MongoDB GridFS bucket
package mongodb

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by Load for unknown artifact names
var ErrNotFound = errors.New("artifact not found")

// Store implements cache.Store using GridFS
type Store struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

// Config holds MongoDB connection settings
type Config struct {
	URI            string
	Database       string
	Bucket         string
	ChunkSizeBytes int32
}

// NewStore connects to MongoDB and opens the artifact bucket
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongodb: URI is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	database := cfg.Database
	if database == "" {
		database = "fac"
	}
	bucketName := cfg.Bucket
	if bucketName == "" {
		bucketName = "transactions"
	}
	chunkSize := cfg.ChunkSizeBytes
	if chunkSize == 0 {
		chunkSize = 261120 // 255KB
	}

	bucket, err := gridfs.NewBucket(client.Database(database), options.GridFSBucket().
		SetName(bucketName).
		SetChunkSizeBytes(chunkSize))
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("creating GridFS bucket: %w", err)
	}

	return &Store{client: client, bucket: bucket}, nil
}

// Save uploads data as a new revision of name. Load returns the latest
// revision, so repeated saves behave like an overwrite.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hash := sha256.Sum256(data)
	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"checksum":  hex.EncodeToString(hash[:]),
		"cached_at": time.Now().UTC(),
	})

	uploadStream, err := s.bucket.OpenUploadStream(name, uploadOpts)
	if err != nil {
		return fmt.Errorf("opening upload stream: %w", err)
	}

	// Chunks smaller than the chunk size are only flushed on Close
	if _, err := uploadStream.Write(data); err != nil {
		_ = uploadStream.Close()
		return fmt.Errorf("writing artifact: %w", err)
	}
	if err := uploadStream.Close(); err != nil {
		return fmt.Errorf("closing upload stream: %w", err)
	}
	return nil
}

// Load returns the latest revision of the named artifact
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := s.bucket.DownloadToStreamByName(name, &buf); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("downloading artifact: %w", err)
	}
	return buf.Bytes(), nil
}

// Close disconnects from MongoDB
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
