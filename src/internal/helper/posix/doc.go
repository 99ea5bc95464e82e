// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
// Cobra command definitions use the executable name so usage text matches
// however the binary was installed or renamed:
//
//	exe := posix.GetExecutableName()
//	rootCmd := &cobra.Command{
//	    Use:     exe + " [flags] VALUE...",
//	    Example: fmt.Sprintf("  %[1]s '{foo: 1}'\n  %[1]s --table tick", exe),
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/valuelog" → "valuelog"
//   - Windows: "C:\bin\valuelog.exe" → "valuelog"
//   - Fallback: Empty args → "valuelog"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
