// Package test contains testing utils functions.
package test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sergi/go-diff/diffmatchpatch"
	diff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

func init() {
	spew.Config.DisableMethods = true
	spew.Config.DisableCapacities = true
	spew.Config.DisablePointerMethods = true
	spew.Config.DisablePointerAddresses = true
}

var jsonFormatterConfig = formatter.AsciiFormatterConfig{
	Coloring:       true,
	ShowArrayIndex: true,
}

// DiffJSON returns readable diff of two JSON objects, empty if they are equal.
// Indents and white spaces are ignored.
func DiffJSON(t *testing.T, expected, actual []byte) string {
	t.Helper()

	left := map[string]interface{}{}
	if err := json.Unmarshal(expected, &left); err != nil {
		t.Fatalf("expected is not a JSON object: %v", err)
	}
	diffs, err := diff.New().Compare(expected, actual)
	if err != nil {
		t.Fatalf("compare JSON: %v", err)
	}
	if !diffs.Modified() {
		return ""
	}
	out, err := formatter.NewAsciiFormatter(left, jsonFormatterConfig).Format(diffs)
	if err != nil {
		t.Fatalf("format JSON diff: %v", err)
	}
	return out
}

// DiffModel returns diff of spew dumps of expected and actual, empty if they are deeply equal.
func DiffModel(t *testing.T, expected, actual interface{}) string {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		return ""
	}
	return diffStrings(spew.Sdump(expected), spew.Sdump(actual), true)
}

// DiffText returns character diff of two strings, empty if they are equal.
func DiffText(t *testing.T, expected, actual string) string {
	t.Helper()
	if expected == actual {
		return ""
	}
	return diffStrings(expected, actual, false)
}

func diffStrings(expected, actual string, checkLines bool) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(expected, actual, checkLines))
}

// WriteFile writes content to name inside dir and returns full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
