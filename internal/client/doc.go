// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the deck keeper application runtime.
//
// It wires configuration, storages, adapters, services and the background
// backup worker into a single process lifecycle, and guards the operations
// that need session state the services do not own.
package client
