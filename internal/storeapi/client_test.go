package storeapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/models"
	"storeadmin/internal/storeapi"
)

func TestListUsersDecodesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"username":"annlee","email":"ann@example.com","name":{"firstname":"Ann","lastname":"Lee"},"address":{"city":"Springfield","number":7682,"geolocation":{"lat":"-37.3159","long":"81.1496"}}},
			{"id":2,"username":"bochen","email":"bo@example.com","name":{"firstname":"Bo","lastname":"Chen"}}
		]`))
	}))
	defer srv.Close()

	client := storeapi.NewClient(srv.URL, srv.Client(), nil)
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ann Lee", users[0].FullName())
	assert.Equal(t, 7682, users[0].Address.Number)
	assert.Equal(t, "-37.3159", users[0].Address.Geolocation.Lat)
}

func TestCreateUserSendsJSONAndRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var u models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		u.ID = 11
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(u)
	}))
	defer srv.Close()

	client := storeapi.NewClient(srv.URL, srv.Client(), nil)
	created, err := client.CreateUser(context.Background(), models.User{
		Username: "cngo",
		Email:    "cara@test.org",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, "cngo", created.Username)
}

func TestNon2xxSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := storeapi.NewClient(srv.URL, srv.Client(), nil)
	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetUserEmptyBodyIsNotFound(t *testing.T) {
	// The upstream answers unknown ids with 200 and a null/empty body.
	for _, body := range []string{"", "null"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		client := storeapi.NewClient(srv.URL, srv.Client(), nil)
		_, err := client.GetUser(context.Background(), 999)
		assert.ErrorIs(t, err, storeapi.ErrNotFound)
		srv.Close()
	}
}

func TestGetProduct404IsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := storeapi.NewClient(srv.URL, srv.Client(), nil)
	_, err := client.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, storeapi.ErrNotFound)
}

func TestDeleteProductIgnoresEchoedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"title":"Gone"}`))
	}))
	defer srv.Close()

	client := storeapi.NewClient(srv.URL, srv.Client(), nil)
	assert.NoError(t, client.DeleteProduct(context.Background(), 3))
}

func TestProductPriceDecodesNumeric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"title":"Laptop","price":19.99,"rating":{"rate":4.5,"count":120}}`))
	}))
	defer srv.Close()

	client := storeapi.NewClient(srv.URL, srv.Client(), nil)
	product, err := client.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 19.99, product.Price)
	assert.Equal(t, 4.5, product.Rating.Rate)
	assert.Equal(t, 120, product.Rating.Count)
}
