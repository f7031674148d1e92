// Package utils
package utils

import "testing"

func TestStrToFloat(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue float64
		expected     float64
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"1.5", 0, 1.5},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	for _, test := range tests {
		result := StrToFloat(test.input, test.defaultValue)
		if result != test.expected {
			t.Errorf("StrToFloat(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
	}
}

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
	}
}

func TestStrToUint(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue uint
		expected     uint
	}{
		{"7", 0, 7},
		{"-7", 3, 3},
		{"ABCD", 0, 0},
	}
	for _, test := range tests {
		result := StrToUint(test.input, test.defaultValue)
		if result != test.expected {
			t.Errorf("StrToUint(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
		}
	}
}
