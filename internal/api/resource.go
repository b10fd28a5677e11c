package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Query carries the filter parameters a list endpoint accepts. Zero-value
// fields are omitted; pages that filter purely client-side just pass an
// empty Query.
type Query struct {
	Search string
	Status string
	Group  string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Group != "" {
		v.Set("group", q.Group)
	}
	if len(v) == 0 {
		return nil
	}
	return v
}

// Resource exposes the uniform CRUD surface of one backend collection.
type Resource[T any] struct {
	c          *Client
	path       string
	bulkDelete bool // backend offers POST <path>/bulk-delete
}

// NewResource creates a Resource rooted at path (e.g. "admin/estimates").
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// NewBulkResource creates a Resource whose backend offers a single
// bulk-delete endpoint instead of requiring per-id deletes.
func NewBulkResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path, bulkDelete: true}
}

// Path returns the resource's base path.
func (r *Resource[T]) Path() string { return r.path }

// List fetches the collection and normalizes the response envelope.
func (r *Resource[T]) List(ctx context.Context, q Query) (ListEnvelope[T], error) {
	body, err := r.c.Get(ctx, r.path, q.values())
	if err != nil {
		return ListEnvelope[T]{Items: []T{}}, err
	}
	return DecodeList[T](body)
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	body, err := r.c.Get(ctx, r.path+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", r.path, err)
	}
	return &rec, nil
}

// Create POSTs a draft record.
func (r *Resource[T]) Create(ctx context.Context, draft any) error {
	_, err := r.c.Post(ctx, r.path, draft)
	return err
}

// Update PUTs a full record replacement.
func (r *Resource[T]) Update(ctx context.Context, id string, draft any) error {
	_, err := r.c.Put(ctx, r.path+"/"+id, draft)
	return err
}

// Patch PATCHes a partial field set (single-field toggles and the like).
func (r *Resource[T]) Patch(ctx context.Context, id string, fields any) error {
	_, err := r.c.Patch(ctx, r.path+"/"+id, fields)
	return err
}

// Delete removes a single record.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, r.path+"/"+id)
}

// BulkDelete removes every id in the selection. Backends with a
// bulk-delete endpoint get one request carrying the id list; the rest get
// one delete per id, stopping at the first failure. Either way the
// contract is the same: on error the caller treats the whole operation as
// failed with no partial-state indication.
func (r *Resource[T]) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if r.bulkDelete {
		_, err := r.c.Post(ctx, r.path+"/bulk-delete", map[string][]string{"ids": ids})
		return err
	}
	for _, id := range ids {
		if err := r.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting %s: %w", id, err)
		}
	}
	return nil
}
