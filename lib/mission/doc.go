// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package mission defines the space mission record and loads mission
// datasets from disk.
//
// A dataset file is either a document with a top-level "missions"
// array or a bare array of missions. The encoding is chosen from the
// file extension:
//
//	missions.json        JSON
//	missions.jsonc       JSON with // and /* */ comments, trailing commas
//	missions.yaml, .yml  YAML
//	missions.cbor        CBOR (see [codec])
//
// Any of these may carry a trailing .zst (zstd) or .lz4 (LZ4 frame)
// suffix; the payload is decompressed before decoding.
//
// Every loaded [Dataset] carries a BLAKE3 digest of its decoded
// payload. [Watch] uses the digest to skip reloads when a write leaves
// the content unchanged (editors that rewrite on save, touch, etc.).
package mission
