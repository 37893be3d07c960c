package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileInput struct {
	FullName string `json:"full_name" validate:"omitempty,fullname"`
	Mobile   string `json:"mobile_number" validate:"omitempty,phone"`
	Name     string `json:"name" validate:"required,notblank"`
}

func TestValidateStruct_CustomTags(t *testing.T) {
	tests := []struct {
		name      string
		input     profileInput
		wantField string
		wantTag   string
	}{
		{"valid", profileInput{FullName: "Jane Doe", Mobile: "+66 0812345678", Name: "x"}, "", ""},
		{"local phone", profileInput{Mobile: "0812345678", Name: "x"}, "", ""},
		{"single word name", profileInput{FullName: "Jane", Name: "x"}, "full_name", "fullname"},
		{"digits in name", profileInput{FullName: "Jane D0e", Name: "x"}, "full_name", "fullname"},
		{"short phone", profileInput{Mobile: "12345", Name: "x"}, "mobile_number", "phone"},
		{"letters in phone", profileInput{Mobile: "081234567a", Name: "x"}, "mobile_number", "phone"},
		{"blank name", profileInput{Name: "   "}, "name", "notblank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs := GetValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Equal(t, tt.wantTag, errs[0].Tag)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}
