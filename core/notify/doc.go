// Package notify provides the failure-notification side-channel between the
// SDK core and a subscribed UI layer.
//
// The API client publishes one error notification for every failed request it
// normalizes; the UI subscribes once at startup and renders whatever arrives.
// The channel is deliberately decoupled from the request/result return path:
// publishing is non-blocking, subscriber code never runs on the publisher's
// stack, and a dropped notification never changes the outcome a caller sees.
//
// # Usage
//
//	bus := notify.NewBus()
//	defer bus.Close()
//
//	go func() {
//	    for n := range bus.Notifications() {
//	        toast.Show(n.Level, n.Message)
//	    }
//	}()
//
//	bus.Error("failed to load users")
package notify
