// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the mission
// explorer.
//
// Configuration comes from a single file named by either the
// MISSIONS_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no file discovery. The explorer is a local
// tool, so when neither is set [Load] returns [Default] rather than
// failing.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${MISSIONS_DATA}, and ${VAR:-default} patterns are
// expanded. No environment variable overrides a config value directly.
//
// Key exports:
//
//   - [Config] -- master struct with Dataset, Storage, UI
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other explorer packages.
package config
