// Package cmd provides the `uuidkit` command-line interface.
//
// Usage
//
//	uuidkit encode 'ints(1, 2, 3)'
//	uuidkit decode --width longs 00000000-0000-0001-0000-000000000002
//	uuidkit name --namespace 6ba7b810-9dad-11d1-80b4-00c04fd430c8 example.com
//	uuidkit digest file:///tmp/a.csv s3://bucket/b.csv
//	uuidkit combine <uuid> <uuid> ...
//	uuidkit report --party billing --expected 2 file:///tmp/a.csv
//
// Every command accepts --config with the URL of a YAML service configuration.
// Results are printed one per line to stdout.
package cmd
