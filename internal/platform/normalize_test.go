package platform

import "testing"

func TestNormalizeOS(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"linux", "linux", "linux", false},
		{"darwin", "darwin", "darwin", false},
		{"windows to win32", "windows", "win32", false},
		{"freebsd unsupported", "freebsd", "", true},
		{"plan9 unsupported", "plan9", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeOS(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("normalizeOS() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("normalizeOS() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"amd64 to x64", "amd64", "x64", false},
		{"arm64", "arm64", "arm64", false},
		{"386 to ia32", "386", "ia32", false},
		{"arm unsupported", "arm", "", true},
		{"riscv64 unsupported", "riscv64", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeArch(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("normalizeArch() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("normalizeArch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDistro(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ubuntu", "ubuntu", "ubuntu"},
		{"Ubuntu uppercase", "Ubuntu", "ubuntu"},
		{"with spaces", "  alpine  ", "alpine"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDistro(tt.input); got != tt.want {
				t.Errorf("normalizeDistro() = %v, want %v", got, tt.want)
			}
		})
	}
}
