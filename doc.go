// Package uuidkit bundles the UUID codec and deterministic identifier
// toolkit behind a configurable Service.
//
// The building blocks live in sub-packages and can be used on their own:
//
//   - reversible   : lossless packing of short primitive arrays into a UUID
//   - deterministic: content addressed, name based (version 3) UUIDs
//   - literal      : textual typed literals such as ints(1, 2)
//   - reconcile    : ledger matching parties that saw the same content
//
// The Service adds configuration, storage access through viant/afs, a worker
// pool for digesting many locations and optional OpenTelemetry tracing:
//
//	srv, _ := uuidkit.New()
//	id, _ := srv.FromURL(ctx, "s3://bucket/report.csv")
//	ids := srv.DigestURLs(ctx, "file:///tmp/a", "file:///tmp/b")
//	ref, _ := srv.Encode("longs(1001, 7)")
package uuidkit
