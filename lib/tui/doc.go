// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the terminal building blocks shared by the mission
// explorer's screens: the color theme, query match highlighting,
// overlay splicing, dropdown menus (single and multi-select), the
// single-line field editor, the scrollbar, and change-glow animation.
//
// Nothing here knows about missions or filters. The explorer UI in
// lib/explorerui owns layout and state; this package only draws.
package tui
