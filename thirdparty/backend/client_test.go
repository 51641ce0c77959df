package backend_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/thirdparty/backend"
	cerr "github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantType constant.ErrorType
		wantMsg  string
	}{
		{
			name:     "400 with body message",
			status:   http.StatusBadRequest,
			body:     `{"message":"Le nom est obligatoire"}`,
			wantType: constant.ErrInvalidInput,
			wantMsg:  "Le nom est obligatoire",
		},
		{
			name:     "400 without body",
			status:   http.StatusBadRequest,
			wantType: constant.ErrInvalidInput,
			wantMsg:  "Données invalides. Vérifiez votre saisie.",
		},
		{
			name:     "404 ignores body message",
			status:   http.StatusNotFound,
			body:     `{"message":"shop 3 missing"}`,
			wantType: constant.ErrNotFound,
			wantMsg:  "Ressource non trouvée.",
		},
		{
			name:     "409 with body message",
			status:   http.StatusConflict,
			body:     `{"message":"Horaires qui se chevauchent le lundi"}`,
			wantType: constant.ErrConflict,
			wantMsg:  "Horaires qui se chevauchent le lundi",
		},
		{
			name:     "409 without body",
			status:   http.StatusConflict,
			body:     `not json`,
			wantType: constant.ErrConflict,
			wantMsg:  "Conflit détecté (ex: horaires qui se chevauchent).",
		},
		{
			name:     "500 ignores body message",
			status:   http.StatusInternalServerError,
			body:     `{"message":"NullPointerException"}`,
			wantType: constant.ErrServer,
			wantMsg:  "Erreur serveur. Réessayez plus tard.",
		},
		{
			name:     "other status with body message",
			status:   http.StatusForbidden,
			body:     `{"message":"Accès refusé"}`,
			wantType: constant.ErrUnclassified,
			wantMsg:  "Accès refusé",
		},
		{
			name:     "other status without body",
			status:   http.StatusServiceUnavailable,
			wantType: constant.ErrUnclassified,
			wantMsg:  "Erreur 503",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := backend.NewClient(srv.URL, time.Second)
			err := client.Do(context.Background(), http.MethodGet, "/shops/1", nil, nil)
			require.Error(t, err)

			var ce cerr.CustomError
			require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
			assert.Equal(t, tt.wantType, ce.Type())
			assert.Equal(t, tt.status, ce.Status())
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestClient_Do_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := backend.NewClient(url, time.Second)
	err := client.Do(context.Background(), http.MethodGet, "/shops", nil, nil)
	require.Error(t, err)

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrUnreachable, ce.Type())
	assert.Equal(t, "Impossible de contacter le serveur. Vérifiez votre connexion réseau.", err.Error())
}

func TestClient_Do_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := backend.NewClient(srv.URL, 50*time.Millisecond)
	err := client.Do(context.Background(), http.MethodGet, "/shops", nil, nil)
	require.Error(t, err)

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrNetworkTimeout, ce.Type())
	assert.Equal(t, "Impossible de contacter le serveur. Vérifiez votre connexion réseau.", err.Error())
}

func TestClient_Do_Unknown(t *testing.T) {
	client := backend.NewClient("http://localhost:8080/api/v1", time.Second)
	err := client.Do(context.Background(), "BAD METHOD", "/shops", nil, nil)
	require.Error(t, err)

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrUnknown, ce.Type())
	assert.NotEmpty(t, err.Error())
}

func TestClient_Do_Success(t *testing.T) {
	type shop struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}

	var gotContentType, gotMethod, gotURI string
	var gotBody shop
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"Boulangerie"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL+"/api/v1/", time.Second)

	var out shop
	err := client.Do(context.Background(), http.MethodPost, "/shops?page=0&size=9", shop{Name: "Boulangerie"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/shops?page=0&size=9", gotURI)
	assert.Equal(t, "Boulangerie", gotBody.Name)
	assert.Equal(t, shop{ID: 7, Name: "Boulangerie"}, out)
}

func TestClient_Do_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, time.Second)
	var out map[string]interface{}
	err := client.Do(context.Background(), http.MethodDelete, "/shops/4", nil, &out)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestClient_Do_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, time.Second)
	var out map[string]interface{}
	err := client.Do(context.Background(), http.MethodGet, "/shops/4", nil, &out)
	require.Error(t, err)

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrUnknown, ce.Type())
}

func TestClient_Do_OversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":"`))
		_, _ = w.Write(bytes.Repeat([]byte("a"), backend.MaxResponseBytes))
		_, _ = w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := backend.NewClient(srv.URL, 5*time.Second).Do(context.Background(), http.MethodGet, "/shops", nil, &out)

	var cErr cerr.CustomError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, constant.ErrUnknown, cErr.Type())
	assert.Nil(t, out)
}
