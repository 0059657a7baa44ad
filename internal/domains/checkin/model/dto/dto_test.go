package dto_test

import (
	"testing"

	"frontdesk/internal/domains/checkin/model/dto"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestGuestRequest_Documents(t *testing.T) {
	tests := []struct {
		name      string
		documents map[string]string
		wantErr   string
	}{
		{
			name: "stored url and inline scan",
			documents: map[string]string{
				"aadharFront": "https://cdn.example.com/guests/G-1/aadharfront.jpg",
				"aadharBack":  "data:image/jpeg;base64,/9j/4AAQSkZJRg==",
			},
		},
		{
			name:      "text file rejected",
			documents: map[string]string{"aadharFront": "data:text/plain;base64,aGVsbG8="},
			wantErr:   "documents[aadharFront] must be a document url or a png, jpeg or pdf up to 5MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.GuestRequest{Name: "Ravi Kumar", Phone: "9876543210", Documents: tt.documents}

			err := validator.ValidateStruct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
