// Package client provides the authenticated API client shared by every
// resource wrapper of the admin dashboard SDK.
//
// A Client binds the five HTTP verbs to one base address and funnels every
// outcome — success, server error, or transport failure — through a single
// normalizer into a uniform Result. Callers branch on Result.Success instead
// of handling errors; no exchange outcome ever surfaces as a Go error.
//
// # Basic Usage
//
//	var cfg client.Config
//	config.MustLoad(&cfg)
//
//	api, err := client.New(cfg,
//	    client.WithTokenSource(sessions),
//	    client.WithNotifier(bus),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := api.Get(ctx, "/dashboard/reports")
//	if !res.Success {
//	    // res.Error holds the extracted message; the notify bus has
//	    // already received the same message for the UI toast layer.
//	    return
//	}
//	reports, err := client.Decode[[]Report](res)
//
// # Authentication
//
// Credential attachment is opt-in per call chain. WithAuth returns a derived
// client that reads the current bearer token from the injected TokenSource at
// send time, for each individual request:
//
//	res := api.WithAuth().Post(ctx, "/users", newUser)
//
// Because no token is cached on the client, concurrent calls issued around a
// sign-in or sign-out always observe the store's current token rather than a
// stale instance-level header.
//
// # Result Normalization
//
// Successful responses (any 2xx) normalize to status 200 with the raw payload
// in Result.Data. Error responses keep the server status and extract a
// human-readable message: a string payload has its leading "Error:" prefix
// stripped, object payloads contribute their "message" or "error" field, and
// anything else falls back to the generic status text. Transport failures that
// never reached the server carry StatusTransportError. Every failure result is
// mirrored onto the notification bus for the UI layer.
package client
