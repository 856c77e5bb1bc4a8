// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders decks, storage settings and status notices for the
// terminal. Rendering is pure: every function returns a string and the
// caller decides where it goes.
package tui
