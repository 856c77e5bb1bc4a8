// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Status errors returned by mapHTTPError for Drive and generator responses.
var (
	// ErrBadRequest is a 400: the request itself was rejected.
	ErrBadRequest = errors.New("request rejected by remote service")
	// ErrUnauthorized is a 401: the access token is missing, expired or
	// revoked.
	ErrUnauthorized = errors.New("access token rejected")
	// ErrForbidden is a 403 that is neither rate limiting nor quota.
	ErrForbidden = errors.New("access to remote object denied")
	// ErrRateLimited is a 429, or a 403 whose reason is one of Drive's rate
	// limit reasons.
	ErrRateLimited = errors.New("remote service rate limit exceeded")
	// ErrQuotaExceeded is a 403 with Drive's storage quota reason.
	ErrQuotaExceeded = errors.New("remote storage quota exceeded")
	// ErrNotFound is a 404, typically a file id that went stale between
	// lookup and update.
	ErrNotFound = errors.New("remote object not found")
	// ErrServiceUnavailable is any 5xx.
	ErrServiceUnavailable = errors.New("remote service unavailable")
	// ErrUnexpectedStatus is any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

var (
	// ErrNoCredential is returned before any network call when the remote
	// store has no bearer token.
	ErrNoCredential = errors.New("no access token for remote storage")

	// ErrRenameFailed is returned when a newly created remote object could
	// not be given its name. The object has been deleted again on a best
	// effort basis.
	ErrRenameFailed = errors.New("failed to name remote object")

	// ErrMalformedResponse is returned when a 2xx response body cannot be
	// decoded.
	ErrMalformedResponse = errors.New("malformed response")
)
