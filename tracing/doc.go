// Package tracing wraps OpenTelemetry so that blocking digests (streams,
// remote locations, batches) can be traced. Applications that never call Init
// get no-op spans.
package tracing
