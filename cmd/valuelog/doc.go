// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// valuelog is a command-line tool that pretty-prints values as console log records.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/valuelog/cmd/valuelog@latest
//
// # Usage
//
//	valuelog [FLAGS] VALUE...
//
// Every VALUE is decoded as YAML. Mappings keep their key order, anchors and
// aliases may reference an enclosing value, and the plain word undefined is
// kept distinct from null.
//
// # Flags
//
//	-l, --level          Record severity: info, warn or error (default: info)
//	-c, --config         Configuration file (.json, .yaml, .yml)
//	    --no-color       Print without styling codes
//	    --no-timestamp   Omit the timestamp prefix
//	    --timezone       Include the zone offset in timestamps
//	    --history-limit  Records retained for --table and --stats (default: 50)
//	-f, --file           Also append plain messages to a rotating log file
//	-r, --repeat         Log the values this many times (default: 1)
//	    --table          Print the retained history as a markdown table
//	    --stats          Print history statistics
//	    --raw            Log arguments as plain strings
//
// # Examples
//
// Log a mapping and a sequence:
//
//	valuelog '{foo: 1, bar: 2}' '[1, 2]'
//	# [Mar 04 2026 05:06:07] { foo: 1, bar: 2 } [ 1, 2 ]
//
// Log a self-referencing value:
//
//	valuelog '&node {name: root, parent: *node}'
//	# [Mar 04 2026 05:06:07] { name: 'root', parent: [Circular Object] }
//
// Keep a log file next to terminal output:
//
//	valuelog -l error -f /var/log/app/console.log 'upstream failed' '{status: 502}'
package main
