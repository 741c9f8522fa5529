// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec wraps CBOR encoding for the sundial socket protocol.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2) so the
// same logical request always produces identical bytes. Decoding
// accepts standard CBOR and ignores unknown fields for forward
// compatibility. Both sundiald and sundialctl import this package
// rather than fxamacker/cbor directly.
package codec
