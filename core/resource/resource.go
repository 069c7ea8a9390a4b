package resource

import (
	"context"
	"strings"

	"github.com/adminforge/adminsdk/core/client"
)

// Resource is the shared shape of every per-resource API wrapper: one client,
// one path prefix, and typed CRUD operations composed from the client's verb
// methods. Resource-specific field schemas stay with the caller through the
// type parameter.
//
// Every operation returns the normalized Result alongside the decoded value;
// callers branch on Result.Success exactly as they would with the raw client.
//
// Example:
//
//	users := resource.New[User](api.WithAuth(), "/users")
//	list, res := users.List(ctx)
//	if !res.Success {
//	    return
//	}
type Resource[T any] struct {
	client *client.Client
	prefix string
}

// New creates a resource facade for the given path prefix.
// Pass api.WithAuth() for resources behind authentication.
func New[T any](c *client.Client, prefix string) *Resource[T] {
	return &Resource[T]{
		client: c,
		prefix: "/" + strings.Trim(prefix, "/"),
	}
}

// List fetches the collection.
func (r *Resource[T]) List(ctx context.Context, opts ...client.RequestOption) ([]T, client.Result) {
	res := r.client.Get(ctx, r.prefix, opts...)
	return decodeMany[T](res), res
}

// Get fetches a single item by ID.
func (r *Resource[T]) Get(ctx context.Context, id string, opts ...client.RequestOption) (T, client.Result) {
	res := r.client.Get(ctx, r.path(id), opts...)
	return decodeOne[T](res), res
}

// Create posts a new item and returns the server's representation.
func (r *Resource[T]) Create(ctx context.Context, body any, opts ...client.RequestOption) (T, client.Result) {
	res := r.client.Post(ctx, r.prefix, body, opts...)
	return decodeOne[T](res), res
}

// Update replaces an item by ID.
func (r *Resource[T]) Update(ctx context.Context, id string, body any, opts ...client.RequestOption) (T, client.Result) {
	res := r.client.Put(ctx, r.path(id), body, opts...)
	return decodeOne[T](res), res
}

// Patch partially updates an item by ID.
func (r *Resource[T]) Patch(ctx context.Context, id string, body any, opts ...client.RequestOption) (T, client.Result) {
	res := r.client.Patch(ctx, r.path(id), body, opts...)
	return decodeOne[T](res), res
}

// Delete removes an item by ID.
func (r *Resource[T]) Delete(ctx context.Context, id string, opts ...client.RequestOption) client.Result {
	return r.client.Delete(ctx, r.path(id), opts...)
}

func (r *Resource[T]) path(id string) string {
	return r.prefix + "/" + id
}

// decodeOne unmarshals a successful payload, or returns the zero value.
// Decode failures never alter the result: the raw payload stays available
// in Result.Data.
func decodeOne[T any](res client.Result) T {
	v, err := client.Decode[T](res)
	if err != nil {
		return *new(T)
	}
	return v
}

func decodeMany[T any](res client.Result) []T {
	items, err := client.Decode[[]T](res)
	if err != nil {
		return nil
	}
	return items
}
