package deterministic

import "errors"

// ErrDigestUnavailable is returned by New when the configured digest is not
// linked into the binary or does not produce exactly 16 bytes. It signals a
// broken environment and is not worth retrying.
var ErrDigestUnavailable = errors.New("deterministic: digest unavailable")
