// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate exchanges opaque credentials for signed bearer tokens before a
// request reaches authentication.
//
// A request whose Authorization header ends with a 32 character segment is
// treated as carrying an opaque credential. The segment is handed to a
// [TokenIssuer] and the header is rewritten to "Bearer <signed>". Any other
// header is forwarded untouched. When the issuer fails, the header holds the
// bare credential, which authentication rejects, and the failure is stored in
// the request context (see [ExchangeError]).
//
// The gate never writes a response and never stops the request.
package gate
