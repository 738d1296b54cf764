// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// mission datasets.
//
// Datasets are usually authored as JSON, JSONC, or YAML, but a CBOR
// export is accepted as well: it is smaller on disk and decodes faster
// for large catalogs. Mission types carry `json` struct tags only.
// fxamacker/cbor reads `json` tags as a fallback when `cbor` tags are
// absent, so one tag controls field naming for every format.
//
//	data, err := codec.Marshal(dataset)
//	err = codec.Unmarshal(data, &dataset)
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same logical dataset always produces identical bytes and therefore
// an identical dataset digest.
package codec
