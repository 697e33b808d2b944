package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	region   string
}

// NewS3Store builds the media gateway. A non-empty endpoint switches to
// path-style addressing (MinIO and friends).
func NewS3Store(ctx context.Context, region, bucket, endpoint string) (*S3Store, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		region:   region,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, localPath string, kind Kind) (Asset, error) {
	defer os.Remove(localPath)

	f, err := os.Open(localPath)
	if err != nil {
		return Asset{}, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return Asset{}, err
	}
	contentType := http.DetectContentType(head[:n])
	if kind == KindAuto {
		kind = kindFromContentType(contentType)
	}

	var duration float64
	if kind == KindVideo {
		// best effort; an unparseable container uploads with duration 0
		duration, _ = probeMP4Duration(f)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Asset{}, err
	}

	key := strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Asset{}, err
	}
	return Asset{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Duration: duration,
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, rawURL string, _ Kind) bool {
	key := ObjectKeyFromURL(rawURL)
	if key == "" {
		return false
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

func kindFromContentType(ct string) Kind {
	switch {
	case strings.HasPrefix(ct, "video/"):
		return KindVideo
	case strings.HasPrefix(ct, "image/"):
		return KindImage
	default:
		return KindAuto
	}
}
