// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key generation and validation.

# Admin Key

Administrators authenticate every protected request with one shared key,
sent in the X-Admin-Key header (AdminKeyHeader). The key comes from the
ADMIN_KEY setting:

	err := auth.ValidateAdminKey(r.Header.Get(auth.AdminKeyHeader), cfg.AdminKey)

Returns ErrMissingAdminKey for an empty header and ErrInvalidAdminKey for a
mismatch. Both values are SHA-256 hashed and compared with hmac.Equal.

# Generating a Key

	key, err := auth.GenerateAdminKey()

Produces 32 random bytes, URL-safe base64 encoded without padding. The
server exposes this as:

	quickly-pair keygen
*/
package auth
