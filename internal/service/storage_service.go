package service

import (
	"context"
	"fmt"
	"time"

	"github.com/legicam/backend/internal/platform/storage"
)

// StorageService gère le dépôt des PDF sources : le collaborateur
// d'extraction téléverse l'original via une URL présignée, puis référence
// la clé d'objet dans la charge utile d'ingestion.
type StorageService interface {
	GenerateUploadURL(ctx context.Context, fileName string) (string, string, error)
	Initialize(ctx context.Context) error
}

type storageService struct {
	storage    storage.Storage
	bucketName string
}

func NewStorageService(s storage.Storage, bucketName string) StorageService {
	return &storageService{
		storage:    s,
		bucketName: bucketName,
	}
}

func (s *storageService) Initialize(ctx context.Context) error {
	exists, err := s.storage.BucketExists(ctx, s.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return s.storage.MakeBucket(ctx, s.bucketName)
	}
	return nil
}

// GenerateUploadURL retourne l'URL présignée et la clé d'objet à reporter
// dans le champ source_objet du texte
func (s *storageService) GenerateUploadURL(ctx context.Context, fileName string) (string, string, error) {
	objectName := fmt.Sprintf("sources/%s", fileName)
	// URL valable 15 minutes
	expiry := 15 * time.Minute
	url, err := s.storage.GetPresignedUploadURL(ctx, s.bucketName, objectName, expiry)
	if err != nil {
		return "", "", fmt.Errorf("échec de génération de l'URL de téléversement: %w", err)
	}
	return url, objectName, nil
}
