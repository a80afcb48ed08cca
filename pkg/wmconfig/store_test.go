package wmconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProvideDefaultDoesNotOverwrite(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "wiimouse.conf"))
	if err := s.ProvideDefault("socket_address", "/run/wiimouse.sock"); err != nil {
		t.Fatalf("ProvideDefault: %v", err)
	}
	if err := s.ProvideDefault("socket_address", "/tmp/other.sock"); err != nil {
		t.Fatalf("ProvideDefault: %v", err)
	}
	got, ok := s.String("socket_address")
	if !ok || got != "/run/wiimouse.sock" {
		t.Fatalf("socket_address = %q, %v, want /run/wiimouse.sock, true", got, ok)
	}
}

func TestProvideDefaultRejectsUnknownKey(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "wiimouse.conf"))
	err := s.ProvideDefault("not_a_real_key", "x")
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestParseVector3RoundTrip(t *testing.T) {
	v, err := ParseVector3("-100000/1024,0/1,10000/1")
	if err != nil {
		t.Fatalf("ParseVector3: %v", err)
	}
	want := Vector3{-100000.0 / 1024, 0, 10000}
	if v != want {
		t.Fatalf("ParseVector3 = %v, want %v", v, want)
	}

	back, err := ParseVector3(FormatVector3(v))
	if err != nil {
		t.Fatalf("ParseVector3(FormatVector3): %v", err)
	}
	for i := range v {
		if diff := v[i] - back[i]; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("component %d round-trip = %v, want ~%v", i, back[i], v[i])
		}
	}
}

func TestParseVector3RejectsBadShape(t *testing.T) {
	cases := []string{"1/2,3/4", "1/2,3/4,5/6,7/8", "1,2,3", "1/0,2/1,3/1"}
	for _, c := range cases {
		if _, err := ParseVector3(c); err == nil {
			t.Errorf("ParseVector3(%q) should have failed", c)
		}
	}
}

func TestLoadSkipsInvalidLinesButKeepsGoodOnes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiimouse.conf")
	contents := "socket_address=/run/wiimouse.sock\n" +
		"bogus_key=1\n" +
		"calmatx=-100000/1024,0/1,1000000/1\n" +
		"not a line\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := New(path)
	var errs []error
	if err := s.Load(func(e error) { errs = append(errs, e) }); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 reported errors, got %d: %v", len(errs), errs)
	}
	if addr, ok := s.String("socket_address"); !ok || addr != "/run/wiimouse.sock" {
		t.Errorf("socket_address = %q, %v", addr, ok)
	}
	if _, ok := s.Vector("calmatx"); !ok {
		t.Errorf("calmatx not loaded")
	}
}

func TestWriteThenLoadPreservesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiimouse.conf")
	s := New(path)
	if err := s.SetString("socket_address", "/run/wiimouse.sock"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if err := s.SetVector("screen_top_left", Vector3{0, 0, 0}); err != nil {
		t.Fatalf("SetVector: %v", err)
	}
	if err := s.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}

	reloaded := New(path)
	if err := reloaded.Load(nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if addr, ok := reloaded.String("socket_address"); !ok || addr != "/run/wiimouse.sock" {
		t.Errorf("socket_address = %q, %v", addr, ok)
	}
	if v, ok := reloaded.Vector("screen_top_left"); !ok || v != (Vector3{0, 0, 0}) {
		t.Errorf("screen_top_left = %v, %v", v, ok)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	if err := s.Load(nil); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
}
