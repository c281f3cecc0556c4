package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

const defaultLinkExpiry = 15 * time.Minute

// Config holds the S3 settings used to sign recording links.
// Credentials fall back to the default AWS chain when left empty.
type Config struct {
	AccessKeyID     string
	Endpoint        string // optional, for S3-compatible stores such as MinIO
	Expiry          time.Duration
	PathStyle       bool
	Region          string
	SecretAccessKey string
	SessionToken    string
}

// RecordingLinker resolves recording references. s3://bucket/key references
// are presigned; http and https references are passed through.
type RecordingLinker struct {
	expiry  time.Duration
	presign *s3.PresignClient
}

var _ ports.RecordingLinker = (*RecordingLinker)(nil)

// NewRecordingLinker builds the S3 presign client from cfg
func NewRecordingLinker(ctx context.Context, cfg Config) (*RecordingLinker, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = defaultLinkExpiry
	}

	return &RecordingLinker{
		expiry:  expiry,
		presign: s3.NewPresignClient(client),
	}, nil
}

// Link returns a URL for ref that a browser can open
func (l *RecordingLinker) Link(ctx context.Context, ref string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("invalid recording reference %q: %w", ref, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.String(), nil
	case "s3":
		return l.presignObject(ctx, u)
	}
	return "", fmt.Errorf("unsupported recording reference scheme %q", u.Scheme)
}

func (l *RecordingLinker) presignObject(ctx context.Context, u *url.URL) (string, error) {
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", fmt.Errorf("recording reference %q needs both a bucket and a key", u.String())
	}

	out, err := l.presign.PresignGetObject(ctx,
		&s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)},
		func(po *s3.PresignOptions) { po.Expires = l.expiry },
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign recording: %w", err)
	}

	logging.Logger.Debug("Presigned recording link", "bucket", bucket, "key", key, "expiry", l.expiry)
	return out.URL, nil
}
