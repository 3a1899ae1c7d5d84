package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/summarium/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Requests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr string
	}{
		{name: "valid user", obj: models.User{Login: "ann", Password: "secret1"}},
		{name: "short login", obj: models.User{Login: "an", Password: "secret1"}, wantErr: "login: min=3"},
		{name: "missing password", obj: &models.User{Login: "ann"}, wantErr: "password: required"},
		{name: "valid task", obj: models.SaveTaskRequest{Title: "x", Status: models.StatusTodo}},
		{name: "empty status allowed", obj: models.SaveTaskRequest{}},
		{name: "bad status", obj: models.SaveTaskRequest{Status: "later"}, wantErr: "status: oneof"},
		{name: "bad priority", obj: models.SaveTaskRequest{Priority: "meh"}, wantErr: "priority: oneof"},
		{name: "empty comment", obj: models.CreateActivityRequest{}, wantErr: "comment: required"},
		{name: "tools need messages", obj: models.ToolsRequest{}, wantErr: "messages: required"},
		{
			name:    "tool message role",
			obj:     models.ToolsRequest{Messages: []models.ChatMessage{{Role: "robot", Content: "hi"}}},
			wantErr: "role: oneof",
		},
		{name: "speech", obj: models.SpeechRequest{ID: "n1", Text: "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Partial(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), models.User{Login: "ann"}, "Login")
	assert.NoError(t, err, "password is not checked")
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidateID(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.ValidateID("0190f1c5-6d4c-7d2b-9a3e-2f1c5b0a7e11"))
	for _, bad := range []string{"", "42", "0190f1c56d4c7d2b9a3e2f1c5b0a7e11", "{0190f1c5-6d4c-7d2b-9a3e-2f1c5b0a7e11}"} {
		assert.ErrorIs(t, v.ValidateID(bad), ErrInvalidID, bad)
	}
}

func TestValidateDay(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.ValidateDay("2024-02-29"))
	assert.ErrorIs(t, v.ValidateDay("2023-02-29"), ErrInvalidDay)
	assert.ErrorIs(t, v.ValidateDay(""), ErrInvalidDay)
}
