// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package catalog supplies the known versions of each package. Versions come
// from a JSON releases document, either a local file or the one compiled into
// the binary:
//
//	{
//	  "react-native": ["0.70.0", "0.71.0-rc.0", "0.71.0"],
//	  "react-native-windows": {"cpp": ["0.70.0"], "cs": ["0.70.0"]},
//	  "react-native-macos": ["0.70.0"]
//	}
//
// A package value may be a plain list (shared by all languages) or an object
// keyed by language.
package catalog
