package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"storefront_back_end/internal/config"
)

var MinioClient *minio.Client

func ConnectMinio() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT absent — upload d'images désactivé")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			"",
		),
		Secure: os.Getenv("MINIO_SECURE") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
		return
	}
	MinioClient = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}

// UploadImage envoie un fichier vers MinIO sous un nom d'objet unique
// et retourne (url publique, nom d'objet).
func UploadImage(file *multipart.FileHeader) (string, string, error) {
	if MinioClient == nil {
		return "", "", NewAppError(http.StatusServiceUnavailable, "Image storage is not configured")
	}

	f, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	bucket := config.Getenv("MINIO_BUCKET", "products")
	objectName := fmt.Sprintf("products/%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))

	_, err = MinioClient.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", "", err
	}

	publicBase := os.Getenv("MINIO_PUBLIC_URL")
	if publicBase == "" {
		publicBase = fmt.Sprintf("http://%s", os.Getenv("MINIO_ENDPOINT"))
	}
	url := fmt.Sprintf("%s/%s/%s", publicBase, bucket, objectName)
	return url, objectName, nil
}

// RemoveImage supprime un objet du bucket.
func RemoveImage(objectName string) error {
	if MinioClient == nil {
		return NewAppError(http.StatusServiceUnavailable, "Image storage is not configured")
	}

	bucket := config.Getenv("MINIO_BUCKET", "products")
	return MinioClient.RemoveObject(context.Background(), bucket, objectName,
		minio.RemoveObjectOptions{})
}
