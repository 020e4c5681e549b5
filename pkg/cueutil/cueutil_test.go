// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"chainres/pkg/cueutil"
)

const testSchema = `
#Entry: {
	name: string & !=""
	cross?: string
}
#Table: [string]: [...#Entry]
`

type entry struct {
	Name  string `json:"name"`
	Cross string `json:"cross,omitempty"`
}

func TestParseAndDecode_Valid(t *testing.T) {
	t.Parallel()
	data := []byte(`cc: [{name: "gcc", cross: "arm-linux-gnueabi-"}, {name: "clang"}]`)
	got, err := cueutil.ParseAndDecode[map[string][]entry]([]byte(testSchema), data, "#Table")
	if err != nil {
		t.Fatalf("ParseAndDecode: %v", err)
	}
	cc := (*got)["cc"]
	if len(cc) != 2 || cc[0].Name != "gcc" || cc[0].Cross != "arm-linux-gnueabi-" || cc[1].Name != "clang" {
		t.Errorf("decoded %+v", cc)
	}
}

func TestParseAndDecode_SchemaViolation(t *testing.T) {
	t.Parallel()
	data := []byte(`cc: [{name: ""}]`)
	_, err := cueutil.ParseAndDecode[map[string][]entry]([]byte(testSchema), data, "#Table",
		cueutil.WithFilename("toolchains.cue"))
	if err == nil {
		t.Fatal("empty name should fail validation")
	}
	if !strings.Contains(err.Error(), "toolchains.cue") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestParseAndDecode_SyntaxError(t *testing.T) {
	t.Parallel()
	_, err := cueutil.ParseAndDecode[map[string][]entry]([]byte(testSchema), []byte(`cc: [`), "#Table")
	if err == nil {
		t.Fatal("syntax error should be reported")
	}
}

func TestParseAndDecode_MissingSchemaPath(t *testing.T) {
	t.Parallel()
	_, err := cueutil.ParseAndDecode[map[string][]entry]([]byte(testSchema), []byte(`cc: []`), "#Nope")
	if err == nil || !strings.Contains(err.Error(), "#Nope") {
		t.Errorf("missing definition should be an internal error naming the path, got %v", err)
	}
}
