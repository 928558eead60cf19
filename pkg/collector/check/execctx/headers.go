// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package execctx

import (
	"iter"
	"maps"
	"net/http"
)

// HTTPHeaders holds the default HTTP header fields a check applies to the
// requests it issues. Each field maps to exactly one value and field names are
// matched byte for byte, so "User-Agent" and "user-agent" are distinct keys.
//
// The zero value is an empty bag ready to use. HTTPHeaders is not safe for
// concurrent mutation.
type HTTPHeaders struct {
	headers map[string]string
}

// Get returns the value of field and whether it is present.
func (h *HTTPHeaders) Get(field string) (string, bool) {
	value, ok := h.headers[field]
	return value, ok
}

// Set sets field to value and returns the value it replaced, if any.
func (h *HTTPHeaders) Set(field, value string) (string, bool) {
	if h.headers == nil {
		h.headers = make(map[string]string)
	}
	previous, ok := h.headers[field]
	h.headers[field] = value
	return previous, ok
}

// Unset removes field and returns the value it held, if any.
func (h *HTTPHeaders) Unset(field string) (string, bool) {
	previous, ok := h.headers[field]
	if ok {
		delete(h.headers, field)
	}
	return previous, ok
}

// Len returns the number of fields in the bag.
func (h *HTTPHeaders) Len() int {
	return len(h.headers)
}

// All returns an iterator over the (field, value) pairs of the bag, in no
// particular order. The bag must not be modified while iterating.
func (h *HTTPHeaders) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for field, value := range h.headers {
			if !yield(field, value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the bag.
func (h *HTTPHeaders) Clone() HTTPHeaders {
	return HTTPHeaders{headers: maps.Clone(h.headers)}
}

// ApplyTo copies every field into dst, replacing any value dst already holds
// for it. Field names are written as-is, without canonicalization.
func (h *HTTPHeaders) ApplyTo(dst http.Header) {
	for field, value := range h.headers {
		dst[field] = []string{value}
	}
}
