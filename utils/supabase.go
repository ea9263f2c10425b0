package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

const exportBucket = "ekspor_survei"

// UploadExportArtifact mengunggah hasil ekspor (pdf/xlsx/csv) ke bucket
// Supabase Storage dan mengembalikan URL publiknya. Kalau SUPABASE_URL tidak
// diset, pemanggil cukup memakai file lokal.
func UploadExportArtifact(data []byte, filename string, contentType string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return "", fmt.Errorf("SUPABASE_URL/SUPABASE_KEY belum diset")
	}

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	objectPath := fmt.Sprintf("rekap/%s", filepath.Base(filename))

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := storageClient.UploadFile(exportBucket, objectPath, bytes.NewReader(data), options); err != nil {
		return "", err
	}

	publicURL := storageClient.GetPublicUrl(exportBucket, objectPath)
	return publicURL.SignedURL, nil
}

// SupabaseConfigured true kalau kredensial storage tersedia.
func SupabaseConfigured() bool {
	return os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_KEY") != ""
}
