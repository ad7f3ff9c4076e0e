package adapter

import "net/http"

// AttachAuth returns h with the Authorization header set from src. When src
// has no header to offer, h is returned unchanged. h itself is never
// modified.
func AttachAuth(h http.Header, src AuthSource) http.Header {
	value, ok := src.AuthHeader()
	if !ok {
		return h
	}

	out := h.Clone()
	if out == nil {
		out = make(http.Header, 1)
	}
	out.Set("Authorization", value)
	return out
}
