package udev

import (
	"slices"
	"strings"
	"testing"
)

// /sys/devices/virtual/mem/random exists on every Linux system, which
// makes it a handy fixture for database lookups.
const randomSyspath = "/sys/devices/virtual/mem/random"

func TestNewDeviceFromSyspath(t *testing.T) {
	d := NewDeviceFromSyspath(randomSyspath)
	if d == nil {
		t.Fatal("expected a device for /sys/devices/virtual/mem/random")
	}
	if d.Syspath() != randomSyspath {
		t.Errorf("expected syspath %q, got %q", randomSyspath, d.Syspath())
	}
	if d.Sysname() != "random" {
		t.Errorf("expected sysname random, got %q", d.Sysname())
	}
	if d.Subsystem() != "mem" {
		t.Errorf("expected subsystem mem, got %q", d.Subsystem())
	}
	if d.Devnode() != "/dev/random" {
		t.Errorf("expected devnode /dev/random, got %q", d.Devnode())
	}
}

func TestNewDeviceFromSyspathMissing(t *testing.T) {
	if d := NewDeviceFromSyspath("/sys/devices/virtual/mem/no-such-device"); d != nil {
		t.Errorf("expected nil for a nonexistent syspath, got %v", d.Syspath())
	}
}

func TestDeviceParent(t *testing.T) {
	d := NewDeviceFromSyspath(randomSyspath)
	if d == nil {
		t.Fatal("expected a device")
	}
	p := d.Parent()
	if p == nil {
		t.Fatal("expected a parent device")
	}
	if !strings.HasPrefix(randomSyspath, p.Syspath()) {
		t.Errorf("parent %q is not a prefix of %q", p.Syspath(), randomSyspath)
	}
}

func TestEnumerateSubsystemFilter(t *testing.T) {
	e := NewEnumerate()
	defer e.Free()
	if err := e.AddMatchSubsystem("mem"); err != nil {
		t.Fatal(err)
	}
	devices, err := e.Devices()
	if err != nil {
		t.Fatal(err)
	}
	paths := slices.Collect(devices)
	if !slices.Contains(paths, randomSyspath) {
		t.Errorf("mem scan does not include %s: %v", randomSyspath, paths)
	}
	for _, p := range paths {
		d := NewDeviceFromSyspath(p)
		if d == nil {
			continue
		}
		if d.Subsystem() != "mem" {
			t.Errorf("filter leaked %s (subsystem %q)", p, d.Subsystem())
		}
	}
}

func TestEnumerateSysnameFilter(t *testing.T) {
	e := NewEnumerate()
	defer e.Free()
	if err := e.AddMatchSysname("random"); err != nil {
		t.Fatal(err)
	}
	devices, err := e.Devices()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(slices.Collect(devices), randomSyspath) {
		t.Errorf("sysname scan does not include %s", randomSyspath)
	}
}

func TestNewMonitorFromNetlink(t *testing.T) {
	m := NewMonitorFromNetlink("udev")
	if m == nil {
		t.Fatal("expected a monitor")
	}
	if err := m.FilterAddMatchSubsystem("hid"); err != nil {
		t.Fatal(err)
	}
}
