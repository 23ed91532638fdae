// SPDX-License-Identifier: MIT
// Package config loads transitcat settings from YAML.
//
// A configuration file looks like:
//
//	routing:
//	  bus_wait_time: 6    # minutes, > 0
//	  bus_velocity: 40    # km/h, > 0
//	log:
//	  level: info         # trace|debug|info|warn|error
//	  format: console     # console|json
//
// Routing parameters supplied by a request document take precedence over the
// file; see package requests.
package config
