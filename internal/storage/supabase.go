// internal/storage/supabase.go
package storage

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps images in a Supabase storage bucket.
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

func NewSupabaseStore(projectURL, serviceKey, bucket string) (*SupabaseStore, error) {
	if projectURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("supabase url and service key are required")
	}
	client := storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil)
	return &SupabaseStore{client: client, bucket: bucket}, nil
}

func (s *SupabaseStore) Save(ctx context.Context, up Upload) (*StoredImage, error) {
	key := "projects/" + ulid.Make().String() + safeExt(up.Filename)

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.UploadFile(s.bucket, key, up.Data, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to supabase: %w", err)
	}

	public := s.client.GetPublicUrl(s.bucket, key)
	return &StoredImage{URL: public.SignedURL, Key: key}, nil
}

func (s *SupabaseStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("failed to remove from supabase: %w", err)
	}
	return nil
}
