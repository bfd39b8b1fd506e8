// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth implements the owner gate of the admin surface.
//
// # Scope
//
// A single shared passkey, compared by plain equality, opens an owner session
// that is persisted as a boolean flag in the device-local store. This is a
// UI gate for a personal site. It is NOT a security boundary: there are no
// accounts, no hashing and no tokens, and anyone holding the passkey is the
// owner.
package auth

import (
	"context"
	"log/slog"

	"github.com/taibuivan/novelia/internal/platform/constants"
	"github.com/taibuivan/novelia/internal/platform/kv"
)

// sessionOpen is the stored value of an open owner session.
const sessionOpen = "true"

// Gate is the owner session object. It is injected into handlers and
// middleware rather than kept as global state.
type Gate struct {
	store   kv.Store
	passkey string
	logger  *slog.Logger
}

// NewGate constructs a [Gate] that accepts passkey.
func NewGate(store kv.Store, passkey string, logger *slog.Logger) *Gate {
	return &Gate{store: store, passkey: passkey, logger: logger}
}

// IsAuthenticated reports whether the owner session is open.
// A store failure reads as a closed session.
func (gate *Gate) IsAuthenticated(ctx context.Context) bool {
	value, ok, err := gate.store.Get(ctx, constants.KeyOwnerAuth)
	if err != nil {
		gate.logger.WarnContext(ctx, "owner_session_read_failed", slog.Any("error", err))
		return false
	}
	return ok && value == sessionOpen
}

// Login opens the owner session when passkey matches and reports whether it did.
//
// # Behaviour
//
// A wrong passkey leaves the session exactly as it was: an open session stays
// open and a closed one stays closed.
func (gate *Gate) Login(ctx context.Context, passkey string) bool {
	if passkey != gate.passkey {
		gate.logger.WarnContext(ctx, "owner_login_rejected")
		return false
	}

	if err := gate.store.Set(ctx, constants.KeyOwnerAuth, sessionOpen); err != nil {
		gate.logger.ErrorContext(ctx, "owner_session_write_failed", slog.Any("error", err))
		return false
	}

	gate.logger.InfoContext(ctx, "owner_logged_in")
	return true
}

// Logout closes the owner session.
func (gate *Gate) Logout(ctx context.Context) error {
	if err := gate.store.Delete(ctx, constants.KeyOwnerAuth); err != nil {
		return err
	}

	gate.logger.InfoContext(ctx, "owner_logged_out")
	return nil
}
