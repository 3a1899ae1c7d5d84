package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: "invalid data provided\n", wantErr: ErrBadRequest, wantMsg: "bad request: invalid data provided"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantMsg: "client unauthorized: "},
		{name: "gateway", status: http.StatusBadGateway, body: "x", wantErr: ErrBadGateway},
		{name: "unmapped", status: http.StatusTeapot, wantMsg: "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapStatus(tt.status, tt.body)
			if tt.wantErr == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
