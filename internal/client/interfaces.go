// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/summarium/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Screens is the terminal UI driven by App.
type Screens interface {
	// LoginFlow blocks until the user signs in or quits.
	LoginFlow(ctx context.Context) (models.Token, error)
	// MainLoop reports whether the user asked to log out.
	MainLoop(ctx context.Context) (logout bool, err error)
}

// Background is the set of jobs that live as long as a signed-in session.
type Background interface {
	Run(ctx context.Context)
	Stop()
}

// Signer ends the server session on logout.
type Signer interface {
	Logout(ctx context.Context) error
}
