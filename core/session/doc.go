// Package session owns the authenticated session state of an admin dashboard
// process: the bearer token and user profile, their persistence across
// restarts, and the expiry-driven automatic logout.
//
// # Core Components
//
//   - Session: token + user profile, fully present or absent — never partial
//   - Store: the single writable owner of the current Session
//   - Storage: durable key/value backend interface (file, memory, Redis)
//
// # Basic Usage
//
// Construct one Store per process and inject it into every consumer:
//
//	backend, err := localfile.New(fileCfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sessions := session.New(backend, session.WithLogger(log))
//	if err := sessions.Restore(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	api, err := client.New(apiCfg, client.WithTokenSource(sessions))
//
// Sign-in installs a session and arms a 24-hour expiry timer:
//
//	res := api.Post(ctx, "/auth/login", credentials)
//	if res.Success {
//	    var sess session.Session
//	    if err := res.Decode(&sess); err == nil {
//	        _ = sessions.SetAuth(ctx, &sess)
//	    }
//	}
//
// # Lifecycle
//
// The store is a two-state machine. Unauthenticated: no session, no timer.
// Authenticated: session set, exactly one expiry timer pending. SetAuth and
// PatchUser (re)arm the timer at the full session duration; Restore arms it
// with whatever lifetime remains from the persisted sign-in instant; Logout
// and the timer firing return the store to Unauthenticated and remove every
// persisted key.
//
// PatchUser resetting the expiry clock is a deliberate product decision —
// users actively editing their profile stay signed in for another full
// session rather than being cut off mid-edit.
//
// # Failure Semantics
//
// A persisted record that fails to parse is treated as absent: Restore purges
// the corrupt keys and leaves the store unauthenticated instead of returning
// an error. Only storage backend failures surface to the caller.
package session
