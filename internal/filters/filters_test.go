// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

// testCheckStringOperandCase represents a single test case for
// TestCheckStringOperand.
type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("filters_test_build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("UHCTL_FILTER_DELIM", tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			assert.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Key, got[i].Key)
				assert.Equal(t, filter.Operand, got[i].Operand)
				assert.Equal(t, filter.Value, got[i].Value)
				assert.Equal(t, filter.Negate, got[i].Negate)
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("filters_test_check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkStringOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filter Filter
		want   bool
	}{
		{"equal", 70, Filter{Operand: "=", Value: "70"}, true},
		{"not equal", 70, Filter{Operand: "=", Negate: true, Value: "70"}, false},
		{"greater", 71, Filter{Operand: ">", Value: "70"}, true},
		{"less", 71, Filter{Operand: "<", Value: "70"}, false},
		{"not a number", 71, Filter{Operand: "=", Value: "x"}, false},
		{"unsupported operand", 71, Filter{Operand: "^", Value: "7"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkNumericOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckVersionOperand(t *testing.T) {
	v := version.Must(version.NewVersion("0.72.0"))

	assert.True(t, checkVersionOperand(v, Filter{Operand: ">", Value: "0.9.0"}), "ordered by version, not by string")
	assert.False(t, checkVersionOperand(v, Filter{Operand: "<", Value: "0.72.0"}))
	assert.True(t, checkVersionOperand(v, Filter{Operand: "=", Value: "0.72"}))
	assert.False(t, checkVersionOperand(v, Filter{Operand: "=", Value: "garbage"}))
	assert.True(t, checkVersionOperand(v, Filter{Operand: "^", Value: "0.7"}))
}

func TestFilterVersions(t *testing.T) {
	versions := []string{"0.9.0", "0.70.0", "0.70.3", "0.71.0", "0.72.0-rc.1", "0.72.0", "not-a-version"}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"no spec keeps everything", "", versions},
		{"minor", "minor>70", []string{"0.71.0", "0.72.0-rc.1", "0.72.0"}},
		{"version order", "version>0.70.0", []string{"0.70.3", "0.71.0", "0.72.0-rc.1", "0.72.0"}},
		{"stable only", "rc=false", []string{"0.9.0", "0.70.0", "0.70.3", "0.71.0", "0.72.0"}},
		{"release candidates", "prerelease^rc", []string{"0.72.0-rc.1"}},
		{"patch releases", "patch!=0", []string{"0.70.3"}},
		{"combined", "minor>69,minor<72,patch=0", []string{"0.70.0", "0.71.0"}},
		{"unknown key is ignored", "color=blue,minor=71", []string{"0.71.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterVersions(versions, tt.spec))
		})
	}
}

func TestFilterVersions_NothingMatches(t *testing.T) {
	got := FilterVersions([]string{"0.70.0"}, "major>0")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
