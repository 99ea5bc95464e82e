// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for valuelog.
// It implements a Cobra-based CLI that decodes each argument as a YAML value,
// prints the values as one console record and can then show the retained
// history as a markdown table or its usage statistics.
// Settings come from an optional JSON or YAML configuration file, the
// environment and flags, in increasing priority.
package cli
