// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/hashicorp/go-version"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. Operators are one of = ^ ~ < > @ or /,
// optionally prefixed with '!'. Examples: "minor>70" (key + operator +
// target), "prerelease=" (key + operator, no target).
var filterRegex = regexp.MustCompile(`^([^!?=^~<>@/]*)(!?[=^~<>@/])(.*)$`)

// Filter is a single parsed --filter expression including the key, operand,
// optional negation and value to match against.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// Keys lists the release attributes a filter can test.
var Keys = []string{"version", "major", "minor", "patch", "prerelease", "rc"}

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed expressions are skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override for situations where the value
	// contains commas.
	delim := ","
	if d, ok := os.LookupEnv("UHCTL_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		// parts[1] is the key
		// parts[2] is the operator (may include negation like "!")
		// parts[3] is the target
		key := strings.TrimSpace(parts[1])
		operand := parts[2]
		target := parts[3]

		if key == "" {
			log.Error("invalid filter: empty key in " + filterSpec)
			continue
		}

		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   target,
		})
	}

	return filters
}

// FilterVersions returns the versions matching every filter in spec, in their
// original order. Entries that do not parse as versions never match a
// non-empty spec.
func FilterVersions(versions []string, spec string) []string {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return versions
	}

	for _, f := range filters {
		if !knownKey(f.Key) {
			msg := fmt.Sprintf("filter key not found: %s (want one of %v)", f.Key, Keys)
			log.Error(msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
	}

	out := []string{}
	for _, raw := range versions {
		v, err := version.NewVersion(raw)
		if err != nil {
			log.Debugf("filters: skipping %q: %v", raw, err)
			continue
		}
		if applyFilters(v, filters) {
			out = append(out, raw)
		}
	}
	return out
}

func knownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// applyFilters returns true if v matches all of the provided filters. Filters
// on unknown keys are ignored.
func applyFilters(v *version.Version, filters []Filter) bool {
	for _, filter := range filters {
		result := true
		segments := v.Segments()

		switch filter.Key {
		case "version":
			result = checkVersionOperand(v, filter)
		case "major":
			result = checkNumericOperand(float64(segments[0]), filter)
		case "minor":
			result = checkNumericOperand(float64(segments[1]), filter)
		case "patch":
			result = checkNumericOperand(float64(segments[2]), filter)
		case "prerelease":
			result = checkStringOperand(v.Prerelease(), filter)
		case "rc":
			result = checkStringOperand(strconv.FormatBool(v.Prerelease() != ""), filter)
		}

		if !result {
			return false
		}
	}

	return true
}

// checkVersionOperand orders by version precedence for =, < and > and falls
// back to string matching for the other operands.
func checkVersionOperand(v *version.Version, filter Filter) bool {
	switch filter.Operand {
	case "=", "<", ">":
	default:
		return checkStringOperand(v.Original(), filter)
	}

	tgt, err := version.NewVersion(strings.TrimSpace(filter.Value))
	if err != nil {
		log.Error("invalid version value: " + filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return v.Equal(tgt) == !filter.Negate
	case "<":
		return v.LessThan(tgt) == !filter.Negate
	default:
		return v.GreaterThan(tgt) == !filter.Negate
	}
}

// checkNumericOperand compares a numeric value against the filter value using
// numeric semantics. Supported operands: =, >, < and the negated form via
// filter.Negate (e.g., != is represented as Negate + "=").
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64)
	if err != nil {
		log.Error("invalid numeric value: " + filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
