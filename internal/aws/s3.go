// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/tblsel/internal/cacheutil"
	"github.com/tfctl/tblsel/internal/log"
)

// Scheme is the URL scheme that marks a table source as an S3 object.
const Scheme = "s3"

// ErrBadURL is returned for an s3:// location without a bucket or key.
var ErrBadURL = errors.New("malformed s3 url")

// ObjectGetter is the slice of the S3 API needed to read a table. It is
// satisfied by *s3.Client.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
	retryer  func() awsv2.Retryer
}

// Option customizes how the S3 client is built. With no options the shell's
// AWS setup is inherited (AWS_PROFILE, shared config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points the client at an S3-compatible endpoint such as MinIO.
// Path-style addressing is switched on with it.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// NewClient loads the AWS config and returns an S3 client built from it.
func NewClient(ctx context.Context, opts ...Option) (*s3v2.Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s, endpoint=%s", o.profile, o.region, o.endpoint)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	var s3Opts []func(*s3v2.Options)
	if o.endpoint != "" {
		endpoint := o.endpoint
		s3Opts = append(s3Opts, func(so *s3v2.Options) {
			so.BaseEndpoint = awsv2.String(endpoint)
			so.UsePathStyle = true
		})
	}

	client := s3v2.NewFromConfig(cfg, s3Opts...)
	log.Debugf("s3 client created: region=%s", cfg.Region)
	return client, nil
}

// IsURL reports whether location uses the s3:// scheme.
func IsURL(location string) bool {
	return strings.HasPrefix(location, Scheme+"://")
}

// ParseURL splits s3://bucket/key into its bucket and key.
func ParseURL(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrBadURL, location, err)
	}
	if u.Scheme != Scheme {
		return "", "", fmt.Errorf("%w: %s: scheme is not %s", ErrBadURL, location, Scheme)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s: need s3://bucket/key", ErrBadURL, location)
	}
	return bucket, key, nil
}

// Fetch reads the whole object named by an s3:// location. When the local
// cache holds a copy with an ETag the request is made conditional, and a 304
// Not Modified answer is served from the cache.
func Fetch(ctx context.Context, client ObjectGetter, location string) ([]byte, error) {
	bucket, key, err := ParseURL(location)
	if err != nil {
		return nil, err
	}

	sub := []string{Scheme, bucket}
	cached, hasData := cacheutil.Read(sub, key)
	etag, hasTag := cacheutil.Read(sub, key+etagSuffix)

	in := &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if hasData && hasTag {
		in.IfNoneMatch = awsv2.String(string(etag.Data))
	}

	result, err := client.GetObject(ctx, in)
	if err != nil {
		if hasData && hasTag && isNotModified(err) {
			log.Debugf("s3 object not modified: bucket=%s, key=%s", bucket, key)
			return cached.Data, nil
		}
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	log.Debugf("s3 object read: bucket=%s, key=%s, bytes=%d", bucket, key, len(data))

	tag := awsv2.ToString(result.ETag)
	if tag != "" {
		err = cacheutil.Write(sub, key, data)
		if err == nil {
			err = cacheutil.Write(sub, key+etagSuffix, []byte(tag))
		}
		if err != nil {
			log.Debugf("s3 cache write failed: %v", err)
		}
	}
	if tag == "" || err != nil {
		// Without a matching ETag an older copy could be served later.
		forget(sub, key)
	}

	return data, nil
}

// etagSuffix marks the cache entry holding an object's ETag.
const etagSuffix = "#etag"

func forget(sub []string, key string) {
	for _, k := range []string{key, key + etagSuffix} {
		if err := cacheutil.Remove(sub, k); err != nil {
			log.Debugf("s3 cache remove failed: %v", err)
		}
	}
}

func isNotModified(err error) bool {
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotModified
}
