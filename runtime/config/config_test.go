package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.yaml")
	content := `
log_dir: /var/log/taosx
component: taosx
instance_id: 2
rotation_count: 7
rotation_size: 512MB
compress: true
reserved_disk_size: 4GB
stop_logging_threshold: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Settings{
		LogDir:               "/var/log/taosx",
		Component:            "taosx",
		InstanceID:           2,
		RotationCount:        7,
		RotationSize:         "512MB",
		Compress:             true,
		ReservedDiskSize:     "4GB",
		StopLoggingThreshold: 25,
	}
	if s != want {
		t.Fatalf("Load = %+v, want %+v", s, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.yaml")
	content := `
log_dir: /var/log/taosx
component: taosx
instance_id: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.RotationCount != 30 || s.RotationSize != "1GB" ||
		s.ReservedDiskSize != "2GB" || s.StopLoggingThreshold != 50 || s.Compress {
		t.Fatalf("defaults not applied: %+v", s)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}
}
