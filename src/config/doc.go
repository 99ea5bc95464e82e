// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads console settings from a JSON or YAML file and the environment.
//
// Configuration Priority:
//  1. Default values are set
//  2. VALUELOG_CONFIG_FILE is read when no path is given
//  3. File values override defaults after the file passes schema validation
//  4. Environment variables override file values (VALUELOG_HISTORY_LIMIT, NO_COLOR)
//
// Example configuration (YAML):
//
//	historyLimit: 200
//	showTimezone: true
//	maxDepth: 4
//	file:
//	  path: /var/log/app/console.log
//	  maxSizeMB: 10
//	  maxBackups: 3
package config
