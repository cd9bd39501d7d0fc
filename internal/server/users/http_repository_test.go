package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/userdir/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStoreStub spins up a json-server-style stub over httptest.
func newStoreStub(t *testing.T, records []*User) (*httptest.Server, *[]*User) {
	t.Helper()

	stored := append([]*User{}, records...)

	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			matched := []*User{}
			email := r.URL.Query().Get("email")
			userID := r.URL.Query().Get("userId")
			for _, u := range stored {
				if email != "" && u.Email != email {
					continue
				}
				if userID != "" && u.UserID != userID {
					continue
				}
				matched = append(matched, u)
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(matched)
		case http.MethodPost:
			var u User
			if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			stored = append(stored, &u)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&u)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &stored
}

func TestHTTPRepository_FindByEmail(t *testing.T) {
	t.Parallel()

	srv, _ := newStoreStub(t, []*User{
		{UserID: "u1", Email: "a@example.com", Password: "h1"},
		{UserID: "u2", Email: "b@example.com", Password: "h2"},
	})
	repo := NewHTTPRepository(srv.URL)

	got, err := repo.FindByEmail(context.Background(), "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)

	_, err = repo.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestHTTPRepository_FindByID(t *testing.T) {
	t.Parallel()

	srv, _ := newStoreStub(t, []*User{
		{UserID: "u1", Email: "a@example.com"},
	})
	repo := NewHTTPRepository(srv.URL)

	got, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	_, err = repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestHTTPRepository_ListAll(t *testing.T) {
	t.Parallel()

	srv, _ := newStoreStub(t, []*User{
		{UserID: "u1", Email: "a@example.com"},
		{UserID: "u2", Email: "b@example.com"},
		{UserID: "u3", Email: "c@example.com"},
	})
	repo := NewHTTPRepository(srv.URL)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHTTPRepository_InsertPostsRecord(t *testing.T) {
	t.Parallel()

	srv, stored := newStoreStub(t, nil)
	repo := NewHTTPRepository(srv.URL)

	err := repo.Insert(context.Background(), &User{
		UserID:    "u9",
		FirstName: "John",
		Email:     "john@example.com",
		Password:  "hash",
	})
	require.NoError(t, err)

	require.Len(t, *stored, 1)
	assert.Equal(t, "u9", (*stored)[0].UserID)
	assert.Equal(t, "hash", (*stored)[0].Password)
}

func TestHTTPRepository_NonOKStatusIsStoreUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	repo := NewHTTPRepository(srv.URL)

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)

	err = repo.Insert(context.Background(), &User{UserID: "u1"})
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestHTTPRepository_UnreachableStoreIsStoreUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens here anymore

	repo := NewHTTPRepository(srv.URL)

	_, err := repo.FindByEmail(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestHTTPRepository_MalformedBodyIsStoreUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(srv.Close)
	repo := NewHTTPRepository(srv.URL)

	_, err := repo.ListAll(context.Background())
	if !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}
