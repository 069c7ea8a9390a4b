// Package resource provides the generic facade that all per-resource API
// wrapper modules (users, roles, privileges, posts, logs, …) share: typed
// CRUD operations over one path prefix, composed from a single API client's
// verb methods. The SDK core knows nothing about resource-specific paths or
// payload schemas beyond this contract.
package resource
