package logging

import (
	"bytes"
	"log"
	"testing"
)

type recorder struct {
	entries []Classification
}

func (r *recorder) Logf(c Classification, format string, v ...interface{}) {
	r.entries = append(r.entries, c)
}

func TestStandardLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := StandardLogger{Logger: log.New(&buf, "", 0)}

	logger.Logf(Warn, "prefix %q missing", "d")

	if e, a := "WARN prefix \"d\" missing\n", buf.String(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestWithClassifications(t *testing.T) {
	r := &recorder{}
	logger := WithClassifications(r, Warn)

	logger.Logf(Debug, "dropped")
	logger.Logf(Warn, "kept")

	if e, a := 1, len(r.entries); e != a {
		t.Fatalf("expect %v entries, got %v", e, a)
	}
	if e, a := Warn, r.entries[0]; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
