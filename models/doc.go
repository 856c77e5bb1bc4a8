// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the deck domain types shared by the store, adapter
// and service layers: decks, their index projection, flashcards, import
// payloads, storage backend names and user notices.
package models
