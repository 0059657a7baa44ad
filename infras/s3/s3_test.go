package s3_test

import (
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "frontdesk"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"

	storage := s3.New(cfg, mocks.NewOtel())

	tests := []struct {
		name   string
		bucket string
		url    string
		want   string
	}{
		{
			name: "public domain",
			url:  "https://cdn.example.com/guests/G-1/aadhaar.jpg",
			want: "guests/G-1/aadhaar.jpg",
		},
		{
			name: "api endpoint with bucket",
			url:  "https://s3.example.com/frontdesk/guests/G-1/aadhaar.jpg",
			want: "guests/G-1/aadhaar.jpg",
		},
		{
			name:   "explicit bucket",
			bucket: "archive",
			url:    "https://s3.example.com/archive/2024/folio.xlsx",
			want:   "2024/folio.xlsx",
		},
		{
			name: "foreign url",
			url:  "https://elsewhere.example.com/guests/G-1/aadhaar.jpg",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.GetObjectNameFromURL(tt.bucket, tt.url))
		})
	}
}
