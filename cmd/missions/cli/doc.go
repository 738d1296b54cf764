// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework behind the missions binary.
//
// A [Command] is a node in the command tree: a name, help text, an
// optional [pflag.FlagSet] factory, and either a Run function or
// nested subcommands. [Command.Execute] routes arguments down the tree,
// parses flags, and prints structured help. Unknown commands and flags
// get a "did you mean" suggestion when an existing name is within edit
// distance 3.
//
// Flag sets are usually generated from a parameter struct with
// [BindFlags]: fields tagged `flag:"name"` become flags, and embedding
// [JSONOutput] adds the standard --json switch.
//
// Errors returned across the command boundary are [ToolError] values
// carrying a category (validation, not found, internal) and an
// optional hint for the user. [ExitError] requests a specific exit
// status without an extra error line.
package cli
