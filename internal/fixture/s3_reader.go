package fixture

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used by the reader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Reader implements Reader for fixtures stored in AWS S3.
type s3Reader struct {
	client ObjectGetter
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Reader creates a new S3-based fixture reader from the default AWS configuration.
func NewS3Reader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Reader, error) {
	logger = logger.With().Str("component", "s3-fixture-reader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 fixture reader initialised")

	return NewS3ReaderWithClient(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

// NewS3ReaderWithClient creates an S3 fixture reader around an existing client.
func NewS3ReaderWithClient(client ObjectGetter, bucket, prefix string, logger zerolog.Logger) Reader {
	return &s3Reader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Read fetches prefix+name from the bucket.
func (r *s3Reader) Read(ctx context.Context, name string) ([]byte, error) {
	key := r.prefix + name

	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("bucket", r.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", r.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to read S3 object body")
		return nil, fmt.Errorf("failed to read S3 object %s: %w", key, err)
	}

	r.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("fixture read from S3")
	return data, nil
}

// fallbackReader tries a primary reader first, then a secondary one.
type fallbackReader struct {
	primary   Reader
	secondary Reader
	logger    zerolog.Logger
}

// NewFallbackReader creates a reader that falls back to secondary when primary fails.
// A nil primary reads from secondary only.
func NewFallbackReader(primary, secondary Reader, logger zerolog.Logger) Reader {
	return &fallbackReader{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "fallback-fixture-reader").Logger(),
	}
}

// Read attempts the primary reader, then the secondary one.
func (r *fallbackReader) Read(ctx context.Context, name string) ([]byte, error) {
	if r.primary != nil {
		data, err := r.primary.Read(ctx, name)
		if err == nil {
			return data, nil
		}
		r.logger.Warn().
			Err(err).
			Str("fixture", name).
			Msg("primary fixture reader failed, falling back")
	}

	return r.secondary.Read(ctx, name)
}
