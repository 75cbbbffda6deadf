package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

const validForm = `adults: 2
children: 0
city_a:
  - description: A1
    price: 400
  - description: A2
    price: 300
city_b:
  - description: B1
    price: 350
`

func writeForm(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "form.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write form: %v", err)
	}
	return p
}

func TestRun_PrintsCopyText(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-form", writeForm(t, validForm)}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "Option 1\n") || !strings.Contains(out.String(), "£325.00") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_ValidationFailureReturnsOne(t *testing.T) {
	var out, errOut bytes.Buffer
	form := strings.Replace(validForm, "adults: 2", "adults: 0", 1)
	if code := run([]string{"-form", writeForm(t, form)}, &out, &errOut); code != 1 {
		t.Fatalf("exit %d", code)
	}
	if out.Len() != 0 || !strings.Contains(errOut.String(), "Adult or Child") {
		t.Fatalf("stdout %q, stderr %q", out.String(), errOut.String())
	}
}

func TestRun_CopyWritesClip(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())

	var out, errOut bytes.Buffer
	code := run([]string{"-form", writeForm(t, validForm), "-copy"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	keys := mr.Keys()
	if len(keys) != 1 || !strings.HasPrefix(keys[0], "clip:") {
		t.Fatalf("clip keys: %v", keys)
	}
	if !strings.Contains(errOut.String(), "copied") {
		t.Fatalf("missing copied log: %s", errOut.String())
	}
}

func TestRun_CopyWithoutRedisIsWarning(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	mr.Close()

	var out, errOut bytes.Buffer
	code := run([]string{"-form", writeForm(t, validForm), "-copy"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Option 1") {
		t.Fatalf("copy text missing: %q", out.String())
	}
}
