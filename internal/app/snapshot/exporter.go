// Package snapshot exports the ship registry to object storage.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"starfleet/internal/app/ds"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const objectPrefix = "snapshots/"

// Bucket is the part of *minio.Client the exporter needs.
type Bucket interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Source lists the ships to export.
type Source interface {
	FindAll() ([]ds.Ship, error)
}

// Document is the JSON layout of one snapshot object.
type Document struct {
	TakenAt time.Time `json:"takenAt"`
	Count   int       `json:"count"`
	Ships   []ds.Ship `json:"ships"`
}

type Exporter struct {
	client Bucket
	bucket string
	source Source
	now    func() time.Time
}

func NewExporter(client Bucket, bucket string, source Source) *Exporter {
	return &Exporter{
		client: client,
		bucket: bucket,
		source: source,
		now:    time.Now,
	}
}

// NewMinioClient connects to a MinIO (or any S3 compatible) endpoint.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

// Export writes every ship to a new object and returns its name. The
// bucket is created when missing.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	ships, err := e.source.FindAll()
	if err != nil {
		return "", fmt.Errorf("load ships: %w", err)
	}

	exists, err := e.client.BucketExists(ctx, e.bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket %s: %w", e.bucket, err)
	}
	if !exists {
		if err := e.client.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("create bucket %s: %w", e.bucket, err)
		}
		logrus.Infof("bucket %s created", e.bucket)
	}

	takenAt := e.now().UTC()
	if ships == nil {
		ships = []ds.Ship{}
	}
	body, err := json.Marshal(Document{TakenAt: takenAt, Count: len(ships), Ships: ships})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	objectName := objectPrefix + takenAt.Format("20060102T150405") + "-" + uuid.New().String() + ".json"
	_, err = e.client.PutObject(ctx, e.bucket, objectName, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}

	logrus.Infof("exported %d ships to %s/%s", len(ships), e.bucket, objectName)
	return objectName, nil
}
