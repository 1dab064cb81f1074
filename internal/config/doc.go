// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads uhctl's optional YAML (or TOML) configuration and
// exposes typed, namespaced getters. The file is uhctl.yaml or uhctl.toml in
// os.UserConfigDir unless UHCTL_CFG_FILE names another path. A typical file:
//
//	base-url: https://react-native-community.github.io/upgrade-helper/
//	catalog: /srv/upgrade-helper/releases.json
//	output: text
//	cache:
//	  clean: 720
//	range:
//	  rn70: ["0.70.0 0.71.0"]
package config
