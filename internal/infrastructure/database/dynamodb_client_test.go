package database

import (
	"context"
	"testing"

	appconfig "design_studio/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewAWSConfig(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), appconfig.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %q", creds.AccessKeyID)
	}
}

func TestEndpointOptions(t *testing.T) {
	if opts := endpointOptions(""); len(opts) != 0 {
		t.Fatalf("expected no options without endpoint")
	}

	opts := endpointOptions("http://dynamodb:8000")
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
	var o dynamodb.Options
	opts[0](&o)
	if o.BaseEndpoint == nil || *o.BaseEndpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoint: %v", o.BaseEndpoint)
	}
}
