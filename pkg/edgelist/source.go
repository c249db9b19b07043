package edgelist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang/snappy"
)

// SourceOptions configures remote source access.
type SourceOptions struct {
	// HTTPClient overrides the client used for http(s) sources.
	HTTPClient *http.Client
	// S3Region is the region for s3:// sources.
	S3Region string
	// S3Endpoint, when non-empty, enables path-style addressing against a
	// custom endpoint (for MinIO and similar).
	S3Endpoint string
}

// Load resolves uri (plain path, http(s)://, or s3://bucket/key), fetches the
// raw bytes, transparently decompresses *.snappy payloads, and parses the
// result as a CSV edge list.
func Load(ctx context.Context, uri string, opts SourceOptions) ([]Edge, error) {
	data, err := fetch(ctx, uri, opts)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(uri, ".snappy") {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, &ParseError{Source: uri, Cause: fmt.Errorf("%w: snappy decode: %v", ErrMalformedInput, err)}
		}
	}

	return ParseCSV(bytes.NewReader(data), uri)
}

func fetch(ctx context.Context, uri string, opts SourceOptions) ([]byte, error) {
	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return fetchHTTP(ctx, uri, opts.HTTPClient)
	case strings.HasPrefix(uri, "s3://"):
		return fetchS3(ctx, uri, opts)
	case strings.Contains(uri, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, uri)
	default:
		return os.ReadFile(uri)
	}
}

func fetchHTTP(ctx context.Context, uri string, client *http.Client) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", uri, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", uri, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func fetchS3(ctx context.Context, uri string, opts SourceOptions) ([]byte, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", uri, err)
	}
	bucket := parsed.Host
	key := strings.TrimPrefix(parsed.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 uri %s: missing bucket or key", uri)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.S3Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.S3Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if opts.S3Endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(cfg, s3opts...)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object %s: %w", uri, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
