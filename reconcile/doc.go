// Package reconcile tracks which parties have seen the same content.
//
// Each party derives a reference UUID from the content it received with the
// deterministic generator and reports it to a Ledger. Parties never exchange
// the content itself: matching references mean matching bytes. A Group
// completes once the expected number of distinct parties reported.
//
// Groups are persisted through a DAO; MemoryDAO, FsDAO (any afs URL) and
// PebbleDAO (embedded key-value store) are provided.
package reconcile
