package main

import (
	"testing"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in       string
		expected int
		wantErr  bool
	}{
		{"A", 0, false},
		{"c", 2, false},
		{"AA", 26, false},
		{"3", 2, false},
		{"0", 0, true},
		{"", 0, true},
		{"A1", 0, true},
	}
	for _, tt := range tests {
		got, err := parseColumn(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColumn(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("parseColumn(%q) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestColumnByHeader(t *testing.T) {
	headers := []string{"fruit", "qty", "3"}
	tests := []struct {
		in       string
		expected int
	}{
		{"qty", 1},
		{"fruit", 0},
		{"3", 2},
		{"B", 1},
	}
	for _, tt := range tests {
		got, err := columnByHeader(headers, tt.in)
		if err != nil || got != tt.expected {
			t.Errorf("columnByHeader(%q) = %d, %v, expected %d", tt.in, got, err, tt.expected)
		}
	}
	if _, err := columnByHeader(headers, "unit price"); err == nil {
		t.Error("columnByHeader(unit price) expected error")
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in        string
		col       int
		ascending bool
		wantErr   bool
	}{
		{"B", 1, true, false},
		{"B:asc", 1, true, false},
		{"B:DESC", 1, false, false},
		{"B:up", 0, false, true},
	}
	for _, tt := range tests {
		col, asc, err := parseSort(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSort(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (col != tt.col || asc != tt.ascending) {
			t.Errorf("parseSort(%q) = %d, %v, expected %d, %v", tt.in, col, asc, tt.col, tt.ascending)
		}
	}
}

func TestClampParams(t *testing.T) {
	tests := []struct {
		action   grid.Action
		size     int
		expected int
	}{
		{grid.ActionSetWidth, 5, grid.MinColumnWidth},
		{grid.ActionSetWidth, 900, grid.MaxColumnWidth},
		{grid.ActionSetHeight, 40, 40},
		{grid.ActionSetFontSize, 200, grid.MaxFontSize},
		{grid.ActionSetFontSize, 0, 0},
		{grid.ActionMerge, 900, 900},
	}
	for _, tt := range tests {
		if got := clampParams(tt.action, grid.Params{Size: tt.size}).Size; got != tt.expected {
			t.Errorf("clampParams(%s, %d) = %d, expected %d", tt.action, tt.size, got, tt.expected)
		}
	}
}
