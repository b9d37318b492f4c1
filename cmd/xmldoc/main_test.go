package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markupdoc/xmlformat"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func TestRun(t *testing.T) {
	cases := map[string]struct {
		args   []string
		input  string
		expect string
	}{
		"decode to json": {
			args:   []string{"decode"},
			input:  `<r id="1"><name>Ann</name><tag>a</tag><tag>b</tag></r>`,
			expect: `{"id":"1","name":"Ann","tag":["a","b"]}` + "\n",
		},
		"decode to yaml": {
			args:   []string{"decode", "--format", "yaml"},
			input:  `<r><name>Ann</name><ok>true</ok></r>`,
			expect: "name: Ann\nok: true\n",
		},
		"decode with query": {
			args:   []string{"decode", "-q", "user.name"},
			input:  `<r><user><name>Ann</name></user></r>`,
			expect: `"Ann"` + "\n",
		},
		"decode false as false": {
			args:   []string{"decode", "--false-as-false"},
			input:  `<r><a>false</a></r>`,
			expect: `{"a":false}` + "\n",
		},
		"encode json": {
			args:   []string{"encode", "--attr", "id", "--root", "user"},
			input:  `{"id": 7, "name": "Ann"}`,
			expect: header + `<user id="7"><name>Ann</name></user>`,
		},
		"encode yaml": {
			args:   []string{"encode", "-f", "yaml"},
			input:  "a: x\nb: [1, 2]\n",
			expect: header + `<response><a>x</a><b>12</b></response>`,
		},
		"encode pretty": {
			args:   []string{"encode", "--pretty"},
			input:  `{"a": {"b": "c"}}`,
			expect: header + "<response>\n    <a>\n        <b>c</b>\n    </a>\n</response>\n",
		},
		"encode custom text key": {
			args:   []string{"encode", "--text-key", "_"},
			input:  `{"_": "hi", "a": "x"}`,
			expect: header + `<response><a>x</a>hi</response>`,
		},
		"roundtrip": {
			args:   []string{"roundtrip"},
			input:  `<d:order xmlns:d="urn:d" id="3"><d:total>9</d:total><note>n</note></d:order>`,
			expect: header + `<d:order xmlns:d="urn:d" id="3"><note>n</note><d:total>9</d:total></d:order>`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(c.args, strings.NewReader(c.input), &stdout, &stderr)
			if err != nil {
				t.Fatalf("expect no error, got %v, stderr: %s", err, stderr.String())
			}
			if e, a := c.expect, stdout.String(); e != a {
				t.Errorf("expect output\n%q\ngot\n%q", e, a)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := map[string]struct {
		args   []string
		input  string
		expect string
	}{
		"no subcommand": {
			expect: "missing subcommand",
		},
		"unknown subcommand": {
			args:   []string{"convert"},
			expect: `unknown subcommand "convert"`,
		},
		"malformed input": {
			args:   []string{"decode"},
			input:  "<r>\n<a>\n</r>",
			expect: "malformed XML",
		},
		"unsupported output format": {
			args:   []string{"decode", "--format", "csv"},
			input:  `<r/>`,
			expect: `unsupported output format "csv"`,
		},
		"unsupported settings format": {
			args:   []string{"settings", "--format", "ini"},
			expect: `unsupported settings format "ini"`,
		},
		"too many arguments": {
			args:   []string{"encode", "a.json", "b.json"},
			expect: "unexpected argument: b.json",
		},
		"unknown flag": {
			args:   []string{"encode", "--nope"},
			expect: "unknown flag: --nope",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(c.args, strings.NewReader(c.input), &stdout, &stderr)
			if err == nil {
				t.Fatalf("expect error, got none")
			}
			if e, a := c.expect, err.Error(); !strings.Contains(a, e) {
				t.Errorf("expect error to contain %q, got %q", e, a)
			}
		})
	}
}

func TestRunSettingsFiles(t *testing.T) {
	dir := t.TempDir()
	exported := filepath.Join(dir, "shape.toml")
	input := filepath.Join(dir, "request.xml")
	if err := os.WriteFile(input, []byte(`<d:item xmlns:d="urn:d" id="1"><d:name>Ann</d:name></d:item>`), 0o600); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	var stdout, stderr bytes.Buffer
	err := run([]string{"decode", "--import-settings", "--export-settings", exported, input}, nil, &stdout, &stderr)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := `{"id":"1","name":"Ann"}`+"\n", stdout.String(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}

	s, err := xmlformat.LoadSettingsFile(exported)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "item", s.RootName; e != a {
		t.Errorf("expect root name %v, got %v", e, a)
	}

	stdout.Reset()
	err = run([]string{"encode", "--settings", exported}, strings.NewReader(`{"id": "2", "name": "Bo"}`), &stdout, &stderr)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	expect := header + `<d:item xmlns:d="urn:d" id="2"><d:name>Bo</d:name></d:item>`
	if e, a := expect, stdout.String(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}

	stdout.Reset()
	err = run([]string{"settings", "--settings", exported, "--format", "json"}, nil, &stdout, &stderr)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := `"root_name": "item"`, stdout.String(); !strings.Contains(a, e) {
		t.Errorf("expect output to contain %q, got %q", e, a)
	}
}

func TestRunLogsWarnings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	settings := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(settings, []byte("namespaced_properties:\n  a: x\n"), 0o600); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	err := run([]string{"encode", "--settings", settings}, strings.NewReader(`{"a": "1"}`), &stdout, &stderr)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "WARN", stderr.String(); !strings.Contains(a, e) {
		t.Errorf("expect stderr to contain %q, got %q", e, a)
	}
}
