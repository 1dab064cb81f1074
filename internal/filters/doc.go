// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows release lists with --filter expressions.
//
// Filters are key-operator-target expressions combined with a configurable
// delimiter (default: comma, override with UHCTL_FILTER_DELIM). A release
// has to match every filter to be kept.
//
// Keys:
//
//   - version    : the version as listed; =, < and > compare by version order
//   - major      : numeric major segment
//   - minor      : numeric minor segment
//   - patch      : numeric patch segment
//   - prerelease : prerelease label, empty for stable releases
//   - rc         : "true" for release candidates
//
// Operators:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than
//   - > : greater than
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "minor>70"        : releases after 0.70
//   - "version<0.72.0"  : releases before 0.72.0
//   - "rc=false"        : stable releases only
//   - "patch!=0"        : patch releases only
//
// Unknown keys are reported and skipped rather than rejecting every release.
package filters
