package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/grok-project-10/mvp-dashboard-backend/config"
)

// FirebaseClients bundles the provider handles the service needs: Auth for
// ID tokens, Firestore for the project collection, Storage for thumbnails.
type FirebaseClients struct {
	App       *firebase.App
	Auth      *fbauth.Client
	Firestore *firestore.Client
	Bucket    *storage.BucketHandle
}

// InitFirebase initializes the Admin SDK and derives the service clients.
// The storage bucket is optional; uploads are disabled without it.
func InitFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*FirebaseClients, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	clients := &FirebaseClients{App: app, Auth: authClient, Firestore: fsClient}

	if cfg.StorageBucket != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			fsClient.Close()
			return nil, fmt.Errorf("failed to get Storage client: %w", err)
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			fsClient.Close()
			return nil, fmt.Errorf("failed to get default bucket: %w", err)
		}
		clients.Bucket = bucket
	}

	return clients, nil
}

// Close releases the clients that hold connections.
func (fc *FirebaseClients) Close() {
	if fc != nil && fc.Firestore != nil {
		fc.Firestore.Close()
	}
}
