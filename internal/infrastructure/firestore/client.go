package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID環境変数が設定されていません")
	}

	var client *firestore.Client
	var err error

	// Cloud Run環境ではデフォルト認証、ローカルでは認証ファイルを優先する
	isCloudRun := os.Getenv("K_SERVICE") != ""
	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	switch {
	case isCloudRun:
		log.Printf("☁️ Cloud Run環境: デフォルト認証を使用")
		client, err = firestore.NewClient(ctx, projectID)
	case credentialsFile != "":
		if _, statErr := os.Stat(credentialsFile); statErr != nil {
			log.Printf("⚠️ Credentials file not found: %s, trying with default authentication", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			log.Printf("📄 Using credentials file: %s", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
		}
	default:
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("✅ Firestore client initialized for project: %s", projectID)
	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
