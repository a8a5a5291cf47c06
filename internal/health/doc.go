// Package health provides the network probe used by readiness checks and
// the polling loop that supervises them.
//
// # Probing
//
// A Pinger performs one reachability check against an endpoint URL and
// reports a boolean; it never returns an error:
//
//	p := health.NewHTTPPinger(health.DefaultPingTimeout)
//	ok := p.Ping(ctx, "http://localhost:4848/management/domain")
//
// HTTPPinger issues a GET and succeeds on any 2xx response after
// following redirects. Connection failures, timeouts, and other status
// codes all report false.
//
// # Waiting
//
// Wait calls a probe repeatedly at a fixed interval until it succeeds, the
// timeout elapses, or the context is cancelled:
//
//	attempts, err := health.Wait(ctx, mon.IsRunning, health.WaitOptions{
//	    Interval: 2 * time.Second,
//	    Timeout:  2 * time.Minute,
//	})
//
// # Constants
//
// DefaultWaitTimeout matches the usual time an application server needs
// to create and start a fresh domain.
package health
