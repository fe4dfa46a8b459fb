package vm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExampleSwapROMHaltsWithSwappedRegisters(t *testing.T) {
	v := New(ExampleSwapROM())
	v.Run()

	if v.CPU.Running {
		t.Fatalf("expected CPU to halt")
	}
	if v.CPU.A() != 0x00 || v.CPU.B() != 0x07 {
		t.Fatalf("expected A,B swapped to 0x00,0x07, got A=0x%02X B=0x%02X", v.CPU.A(), v.CPU.B())
	}
}

func TestLoadFileSeedsResetVector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swap.rom")
	if err := os.WriteFile(path, ExampleSwapROM(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	v, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if v.CPU.IP != 0x0004 {
		t.Fatalf("IP should be seeded from reset vector 0x0004, got 0x%04X", v.CPU.IP)
	}

	v.Run()
	if v.CPU.Running {
		t.Fatalf("expected CPU to halt")
	}
}

func TestLoadFileRejectsOversizedROM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.rom")
	huge := make([]byte, memorySize+1)
	if err := os.WriteFile(path, huge, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error loading oversized ROM")
	}
}
