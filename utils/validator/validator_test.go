package validatorx

import (
	"testing"

	"github.com/muhammadheryan/shop-console/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateFields(t *testing.T) {
	messages := map[string]string{
		"nameFr.required": "requis",
		"price.gte":       "négatif",
	}

	tests := []struct {
		name  string
		rules model.DraftRules
		want  model.FieldErrors
	}{
		{
			name:  "valid",
			rules: model.DraftRules{NameFr: "Pain", Price: 1},
			want:  model.FieldErrors{},
		},
		{
			name:  "missing french name and negative price",
			rules: model.DraftRules{Price: -1},
			want:  model.FieldErrors{"nameFr": "requis", "price": "négatif"},
		},
		{
			name:  "unmapped tag falls back to default message",
			rules: model.DraftRules{NameFr: "Pain", DescriptionEn: "Bread"},
			want:  model.FieldErrors{"nameEn": defaultFieldMessage},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateFields(&tt.rules, messages))
		})
	}
}

func TestValidateStruct_LoginRequest(t *testing.T) {
	assert.Error(t, ValidateStruct(&model.LoginRequest{Username: "admin"}))
	assert.NoError(t, ValidateStruct(&model.LoginRequest{Username: "admin", Password: "secret"}))
}
