// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_FetchTable stores a small table document in a scratch
// bucket and reads it back through Fetch. Requires AWS credentials in the
// environment.
func TestIntegration_FetchTable(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	bucketName := fmt.Sprintf("tblsel-test-%d", time.Now().UnixNano())
	testKey := "frames/test.json"
	testData := []byte(`[{"foo_int1_end":1,"str2":"XXX"}]`)

	_, err = client.CreateBucket(ctx, &s3v2.CreateBucketInput{
		Bucket: awsv2.String(bucketName),
	})
	require.NoError(t, err)
	defer func() {
		client.DeleteObject(ctx, &s3v2.DeleteObjectInput{
			Bucket: awsv2.String(bucketName),
			Key:    awsv2.String(testKey),
		})
		client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{
			Bucket: awsv2.String(bucketName),
		})
	}()

	_, err = client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucketName),
		Key:    awsv2.String(testKey),
		Body:   bytes.NewReader(testData),
	})
	require.NoError(t, err)

	got, err := Fetch(ctx, client, fmt.Sprintf("s3://%s/%s", bucketName, testKey))
	require.NoError(t, err)
	assert.Equal(t, testData, got)
}
