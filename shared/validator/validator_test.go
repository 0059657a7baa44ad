package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/validator"
)

type mealPlan string

func (m mealPlan) Valid() bool {
	return m == "EP" || m == "CP" || m == "MAP" || m == "AP"
}

type guestRequest struct {
	Name     string   `json:"name"     validate:"required,max=100"`
	Phone    string   `json:"phone"    validate:"required,phone"`
	Email    string   `json:"email"    validate:"omitempty,email"`
	Adults   int      `json:"adults"   validate:"gte=0,lte=20"`
	MealPlan mealPlan `json:"mealPlan" validate:"omitempty,valid"`
	CheckIn  string   `json:"checkIn"  validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        guestRequest
		expectError bool
	}{
		{
			name:        "valid request",
			data:        guestRequest{Name: "Ravi Kumar", Phone: "9876543210", Adults: 2, MealPlan: "CP", CheckIn: "2026-01-10"},
			expectError: false,
		},
		{
			name:        "international phone",
			data:        guestRequest{Name: "Anna Schmidt", Phone: "+49 151 2345678"},
			expectError: false,
		},
		{
			name:        "missing name",
			data:        guestRequest{Phone: "9876543210"},
			expectError: true,
		},
		{
			name:        "phone with letters",
			data:        guestRequest{Name: "Ravi Kumar", Phone: "98765abc10"},
			expectError: true,
		},
		{
			name:        "invalid email",
			data:        guestRequest{Name: "Ravi Kumar", Phone: "9876543210", Email: "not-an-email"},
			expectError: true,
		},
		{
			name:        "too many adults",
			data:        guestRequest{Name: "Ravi Kumar", Phone: "9876543210", Adults: 40},
			expectError: true,
		},
		{
			name:        "unknown meal plan",
			data:        guestRequest{Name: "Ravi Kumar", Phone: "9876543210", MealPlan: "BUFFET"},
			expectError: true,
		},
		{
			name:        "malformed date",
			data:        guestRequest{Name: "Ravi Kumar", Phone: "9876543210", CheckIn: "10/01/2026"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid phone", field: "080-2345-6789", tag: "phone", expectError: false},
		{name: "short phone", field: "12345", tag: "phone", expectError: true},
		{name: "valid plan", field: mealPlan("MAP"), tag: "valid", expectError: false},
		{name: "invalid plan", field: mealPlan("XX"), tag: "valid", expectError: true},
		{name: "required empty", field: "", tag: "required", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Ravi Kumar","phone":"9876543210","adults":2}`,
			expectError: false,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Ravi Kumar","phone":"call me"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Ravi Kumar","phone":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&guestRequest{Phone: "9876543210"})
	if err == nil {
		t.Fatal("expected validation error for missing name")
	}

	if err.Error() != "name is required" {
		t.Errorf("expected message with json field name, got: %s", err.Error())
	}

	err = validator.ValidateStruct(&guestRequest{Name: "Ravi Kumar", Phone: "9876543210", MealPlan: "XX"})
	if err == nil || !strings.Contains(err.Error(), "mealPlan") {
		t.Errorf("expected mealPlan message, got: %v", err)
	}
}

func TestDocumentValidation(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "png data url", value: "data:image/png;base64,iVBORw0KGgo=", expectError: false},
		{name: "stored document url", value: "https://cdn.example.com/guests/G-1/passport.pdf", expectError: false},
		{name: "pdf data url", value: "data:application/pdf;base64,JVBERi0xLjQK", expectError: false},
		{name: "unsupported type", value: "data:text/plain;base64,aGVsbG8=", expectError: true},
		{name: "svg data url", value: "data:image/svg+xml;base64,PHN2Zz4=", expectError: true},
		{name: "ftp url", value: "ftp://files.example.com/passport.pdf", expectError: true},
		{name: "plain text", value: "passport", expectError: true},
		{name: "oversized", value: "data:image/png;base64," + strings.Repeat("A", 6<<20), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, "document")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
