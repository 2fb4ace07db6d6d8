package compile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/krait-lang/krait/frontend/common"
)

func TestTranslate(t *testing.T) {
	out, err := Translate("add.kr", "func add(a: int, b: int) -> int return a + b end", Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"// source: add.kr", "fn add(a: i32, b: i32) -> i32 {", "fn main() {"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestTranslateIncompleteExpression(t *testing.T) {
	out, err := Translate("bad.kr", "1 +", Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "" {
		t.Errorf("output produced on error: %q", out)
	}
	var de *common.DiagError
	if !errors.As(err, &de) {
		t.Fatalf("error is %T, want *common.DiagError", err)
	}
	if de.Diag.Message == "" {
		t.Error("empty message")
	}
	if !strings.HasPrefix(err.Error(), "bad.kr:1:") {
		t.Errorf("error %q lacks a position", err.Error())
	}
}

func TestTranslateErrorPositions(t *testing.T) {
	_, err := Translate("", "func f()\n    x = (1 +\nend", Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "3:1: ") {
		t.Errorf("got %q", err.Error())
	}
}

func TestTranslateConcurrent(t *testing.T) {
	sources := []string{
		`route "/a" get return "a" end`,
		"func main() print(1) end",
		"for i = 0, 3 print(i) end",
		"1 +",
	}
	want := make([]string, len(sources))
	for i, src := range sources {
		want[i], _ = Translate("c.kr", src, Options{})
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, src := range sources {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, _ := Translate("c.kr", src, Options{})
				if got != want[i] {
					t.Errorf("source %d: concurrent output differs", i)
				}
			}()
		}
	}
	wg.Wait()
}

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "main.kr")
	out := filepath.Join(dir, "gen", "main.rs")
	if err := os.WriteFile(in, []byte(`route "/ping" get return "pong" end`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := TranslateFile(in, out, Options{Port: 9999}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `.bind(("127.0.0.1", 9999))?`) {
		t.Errorf("unexpected output\n%s", data)
	}

	if err := TranslateFile(filepath.Join(dir, "missing.kr"), out, Options{}); err == nil {
		t.Error("missing input should fail")
	}
}
