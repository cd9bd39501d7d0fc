package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avoronin/userdir/internal/common"
)

// HTTPRepository proxies a JSON document store: GET /users?email= or
// ?userId= for filtered reads, unfiltered GET for a full listing, POST
// /users for inserts. It owns no state and never retries.
type HTTPRepository struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRepository(baseURL string) *HTTPRepository {
	return &HTTPRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *HTTPRepository) query(ctx context.Context, params url.Values) ([]*User, error) {
	endpoint := r.baseURL + "/users"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: store returned status %d", common.ErrStoreUnavailable, resp.StatusCode)
	}

	var records []*User
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return records, nil
}

func (r *HTTPRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	records, err := r.query(ctx, url.Values{"email": {email}})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, common.ErrNotFound
	}
	return records[0], nil
}

func (r *HTTPRepository) FindByID(ctx context.Context, userID string) (*User, error) {
	records, err := r.query(ctx, url.Values{"userId": {userID}})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, common.ErrNotFound
	}
	return records[0], nil
}

func (r *HTTPRepository) ListAll(ctx context.Context) ([]*User, error) {
	return r.query(ctx, nil)
}

func (r *HTTPRepository) Insert(ctx context.Context, user *User) error {
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: store returned status %d", common.ErrStoreUnavailable, resp.StatusCode)
	}

	return nil
}
