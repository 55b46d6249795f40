package domain

import "net/url"

// IsLocalURI reports whether a raw reference points at the local
// filesystem: a bare path, a relative path, or a file:// URI on this
// host. References carrying any other scheme — including logical
// tracking schemes like runs: or models: — are not local, so the local
// dataset source never shadows them. Unparseable input is not local.
func IsLocalURI(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	switch {
	case u.Scheme == "" || u.Scheme == "file":
		// file:// URIs must name this host (or no host at all).
		return u.Host == "" || u.Host == "localhost" || u.Host == "127.0.0.1"
	case len(u.Scheme) == 1:
		// A single-letter scheme is a Windows drive prefix, e.g. "C:\data".
		return true
	default:
		return false
	}
}

// LocalPathFromURI strips the file:// prefix from a local reference,
// returning a plain filesystem path. Bare paths pass through unchanged.
func LocalPathFromURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "file" {
		return raw
	}
	if u.Path == "" {
		return raw
	}
	return u.Path
}
