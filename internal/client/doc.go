// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal vault client runtime.
//
// It resolves the user identity, wires the key cache, the record source
// (local database or remote vault API), the services, background workers
// and the terminal UI into a single process lifecycle.
package client
