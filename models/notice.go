// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoticeKind distinguishes success notices from failure notices.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeFailure
)

// Notice is a short status message shown to the user after an operation.
// It expires at ExpiresAt instead of being removed by a scheduled callback.
type Notice struct {
	Kind      NoticeKind
	Message   string
	ExpiresAt time.Time
}

// NewNotice builds a notice that expires ttl after now.
func NewNotice(kind NoticeKind, message string, now time.Time, ttl time.Duration) Notice {
	return Notice{Kind: kind, Message: message, ExpiresAt: now.Add(ttl)}
}

// Expired reports whether the notice should no longer be displayed.
func (n Notice) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// IsFailure reports whether the notice describes a failed operation.
func (n Notice) IsFailure() bool {
	return n.Kind == NoticeFailure
}
