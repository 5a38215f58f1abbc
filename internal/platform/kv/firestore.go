package kv

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const blobsCollection = "blobs"

// firestoreBlob maps to the Firestore document structure.
type firestoreBlob struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// Firestore implements Store with one document per key in a single
// collection. Production backend.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a Firestore-backed store.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (f *Firestore) Get(ctx context.Context, key string) (string, bool, error) {
	doc, err := f.client.Collection(blobsCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read blob %q: %w", key, err)
	}

	var fb firestoreBlob
	if err := doc.DataTo(&fb); err != nil {
		return "", false, fmt.Errorf("decode blob %q: %w", key, err)
	}
	return fb.Value, true, nil
}

func (f *Firestore) Set(ctx context.Context, key, value string) error {
	fb := firestoreBlob{
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := f.client.Collection(blobsCollection).Doc(key).Set(ctx, fb); err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}

// Compile-time interface check
var _ Store = (*Firestore)(nil)
