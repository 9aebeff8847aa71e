// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for voter-lookup.
//
// Configuration is optional. A file is read only when named by the
// --config flag or the VOTER_LOOKUP_CONFIG environment variable (via
// [Resolve]); there is no ~/.config discovery and no automatic file
// search. Without a file, [Default] reproduces the fixed endpoint and
// timeout.
//
// Precedence is defaults, then the file, then explicit command-line
// flags (applied by the caller). Unknown keys in the file are errors.
//
// ${HOME} and ${VAR:-default} patterns are expanded in the path
// fields (file, log_output) after loading.
package config
