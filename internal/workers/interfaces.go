// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs.
package workers

import "context"

// Worker is a background job. Start returns immediately; the work runs in
// its own goroutine until ctx is cancelled or Stop is called. Stop blocks
// until the goroutine has exited and is safe to call on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// CredentialChecker reports whether a remote credential is present.
type CredentialChecker interface {
	HasCredential() bool
}
