// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"

	"github.com/taibuivan/novelia/internal/platform/apperr"
	"github.com/taibuivan/novelia/internal/platform/ctxutil"
	"github.com/taibuivan/novelia/internal/platform/respond"
)

// OwnerChecker reports whether the owner session is open.
//
// Defining it here keeps the middleware independent of the auth package and
// lets tests use a stub.
type OwnerChecker interface {
	IsAuthenticated(ctx context.Context) bool
}

// RequireOwner rejects requests with 401 unless the owner session is open,
// and marks the request context as owner-initiated otherwise.
//
// # Security
//
// The owner gate is a convenience switch for the admin surface of a personal
// site. It is not an authentication mechanism.
func RequireOwner(owner OwnerChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !owner.IsAuthenticated(request.Context()) {
				respond.Error(writer, request, apperr.Unauthorized("Owner login required"))
				return
			}

			ctx := ctxutil.WithOwner(request.Context())
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
