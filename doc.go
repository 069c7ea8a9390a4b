// Package adminsdk is the client-side core of an admin dashboard: the
// authenticated API client, the session/auth state store, and the response
// normalizer that every resource wrapper shares.
//
// The module is organized as small, composable packages:
//
//   - core/client: HTTP verb methods over one base address, uniform Result
//     normalization, opt-in bearer authentication
//   - core/session: the single owner of the current session — persistence,
//     24h expiry scheduling, rehydration on startup
//   - core/resource: the generic typed CRUD facade per-resource wrappers
//     are built from
//   - core/notify: the non-blocking failure-notification channel consumed
//     by the UI layer
//   - core/config, core/logger: environment configuration and slog helpers
//   - storage/memory, storage/localfile, storage/redis: persistence backends
//     for the session store
//
// Wiring happens once at startup: construct a storage backend, a session
// store over it, a notification bus, and an API client that reads tokens
// from the store. Nothing is global; every dependency is injected.
package adminsdk
