package platform

import (
	"context"
	"runtime"
	"testing"
)

// MockDetector is a test implementation of Detector.
type MockDetector struct {
	info *Info
	err  error
}

// NewMockDetector creates a mock detector with specified return values.
func NewMockDetector(info *Info, err error) Detector {
	return &MockDetector{info: info, err: err}
}

// Detect returns the pre-configured info and error.
func (m *MockDetector) Detect(ctx context.Context) (*Info, error) {
	return m.info, m.err
}

func TestRealDetector_Detect(t *testing.T) {
	detector := NewDetector()
	ctx := context.Background()

	info, err := detector.Detect(ctx)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	wantOS, err := normalizeOS(runtime.GOOS)
	if err != nil {
		t.Skipf("no distributed build for %s", runtime.GOOS)
	}
	if info.OS != wantOS {
		t.Errorf("OS = %v, want %v", info.OS, wantOS)
	}

	switch info.Arch {
	case "x64", "arm64", "ia32":
	default:
		t.Errorf("Arch = %v, want x64, arm64 or ia32", info.Arch)
	}

	if runtime.GOOS == "linux" {
		// The probe never fails; Linux hosts always carry a libc variant.
		if info.Libc == nil {
			t.Fatal("Libc should be set on Linux")
		}
		if info.Libc.Flavor == LibcGlibc && info.Libc.Major == 0 {
			t.Error("glibc result should carry a version")
		}
	} else {
		if info.Libc != nil {
			t.Errorf("Libc should be nil on non-Linux, got %+v", info.Libc)
		}
		if info.Distro != "" {
			t.Errorf("Distro should be empty on non-Linux, got %v", info.Distro)
		}
	}

	// The resolved key must always have a known shape.
	if key := info.Key(); key == "" {
		t.Error("Key() should not be empty")
	}
}

func TestRealDetector_DetectWithFakeProbe(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("libc probing only happens on Linux")
	}

	tests := []struct {
		name    string
		output  string
		wantKey bool // key carries the musl suffix
	}{
		{"musl host", "musl libc (aarch64)\nVersion 1.2.4", true},
		{"modern glibc host", "ldd (GNU libc) 2.39", false},
		{"old glibc host", "ldd (GNU libc) 2.28", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := &RealDetector{
				probe: func(ctx context.Context) ([]byte, error) {
					return []byte(tt.output), nil
				},
			}

			info, err := detector.Detect(context.Background())
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}

			key := info.Key()
			hasSuffix := len(key) > 5 && key[len(key)-5:] == "-musl"
			if hasSuffix != tt.wantKey {
				t.Errorf("Key() = %v, musl suffix = %v, want %v", key, hasSuffix, tt.wantKey)
			}
		})
	}
}
