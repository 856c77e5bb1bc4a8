// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Drive error reasons, from the "errors[].reason" field of a Drive v3 error
// body.
const (
	reasonRateLimit        = "rateLimitExceeded"
	reasonUserRateLimit    = "userRateLimitExceeded"
	reasonStorageQuota     = "storageQuotaExceeded"
	reasonDailyLimit       = "dailyLimitExceeded"
	reasonSharingRateLimit = "sharingRateLimitExceeded"
)

// errorBody covers the error shapes seen here: Drive's
// {"error":{"message":..,"errors":[{"reason":..}]}}, the generator's
// {"detail":..} and a bare {"error":".."}.
type errorBody struct {
	Error  json.RawMessage `json:"error"`
	Detail string          `json:"detail"`
}

type driveError struct {
	Message string `json:"message"`
	Errors  []struct {
		Reason string `json:"reason"`
	} `json:"errors"`
}

// mapHTTPError converts a non-2xx response into one of the status sentinels,
// carrying the service's own message. A 2xx response maps to nil.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason, msg := parseErrorBody(resp.Body())
	if retry := resp.Header().Get("Retry-After"); retry != "" {
		msg += " (retry after " + retry + ")"
	}

	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case status == http.StatusForbidden && isRateLimitReason(reason):
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case status == http.StatusForbidden && reason == reasonStorageQuota:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServiceUnavailable, status, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, msg)
	}
}

// parseErrorBody returns the first Drive reason and the most specific
// message available. Bodies that are not JSON are used verbatim.
func parseErrorBody(raw []byte) (reason, msg string) {
	text := strings.TrimSpace(string(raw))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		var drive driveError
		if json.Unmarshal(body.Error, &drive) == nil {
			if len(drive.Errors) > 0 {
				reason = drive.Errors[0].Reason
			}
			if drive.Message != "" {
				return reason, drive.Message
			}
		}

		var plain string
		if json.Unmarshal(body.Error, &plain) == nil && plain != "" {
			return reason, plain
		}
		if body.Detail != "" {
			return reason, body.Detail
		}
	}

	if text == "" {
		text = "empty response body"
	}
	return reason, text
}

func isRateLimitReason(reason string) bool {
	switch reason {
	case reasonRateLimit, reasonUserRateLimit, reasonDailyLimit, reasonSharingRateLimit:
		return true
	}
	return false
}
