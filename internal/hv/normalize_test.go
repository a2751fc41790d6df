// internal/hv/normalize_test.go

package hv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePositionalShorthand(t *testing.T) {
	tests := []struct {
		name string
		verb string
		args []string
		want []string
	}{
		{
			name: "clippy positional arch",
			verb: "clippy",
			args: []string{"x86_64"},
			want: []string{"--arch", "x86_64"},
		},
		{
			name: "clippy explicit flag unchanged",
			verb: "clippy",
			args: []string{"--arch", "x86_64"},
			want: []string{"--arch", "x86_64"},
		},
		{
			name: "clippy equals form unchanged",
			verb: "clippy",
			args: []string{"--arch=riscv64", "--fix"},
			want: []string{"--arch=riscv64", "--fix"},
		},
		{
			name: "clippy default",
			verb: "clippy",
			args: nil,
			want: []string{"--arch", "aarch64"},
		},
		{
			name: "disk_img positional with trailing flags",
			verb: "disk_img",
			args: []string{"custom.img", "--size", "128M"},
			want: []string{"--image", "custom.img", "--size", "128M"},
		},
		{
			name: "disk_img default",
			verb: "disk_img",
			args: []string{"--size", "128M"},
			want: []string{"--image", "disk.img", "--size", "128M"},
		},
		{
			name: "build positional plat",
			verb: "build",
			args: []string{"aarch64-qemu-virt-hv", "--verbose"},
			want: []string{"--plat", "aarch64-qemu-virt-hv", "--verbose"},
		},
		{
			name: "build has no default",
			verb: "build",
			args: []string{"--verbose"},
			want: []string{"--verbose"},
		},
		{
			name: "run vmconfigs passthrough",
			verb: "run",
			args: []string{"--vmconfigs", "configs/vms/linux.toml"},
			want: []string{"--vmconfigs", "configs/vms/linux.toml"},
		},
		{
			name: "clean has no primary parameter",
			verb: "clean",
			args: []string{"--dry-run"},
			want: []string{"--dry-run"},
		},
		{
			name: "unknown verb passes through",
			verb: "menuconfig",
			args: []string{"a", "b"},
			want: []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.verb, tt.args))
		})
	}
}

func TestNormalizeEquivalentForms(t *testing.T) {
	positional := Normalize("clippy", []string{"x86_64"})
	named := Normalize("clippy", []string{"--arch", "x86_64"})
	assert.Equal(t, named, positional)
}

func TestNormalizeIsPure(t *testing.T) {
	in := []string{"custom.img", "--size", "128M"}
	first := Normalize("disk_img", in)
	second := Normalize("disk_img", in)

	require.Equal(t, first, second)
	// The input must not be touched.
	assert.Equal(t, []string{"custom.img", "--size", "128M"}, in)
	// The outputs must not alias each other or the input.
	first[0] = "mutated"
	assert.Equal(t, "--image", second[0])
	assert.Equal(t, "custom.img", in[0])
}

func TestHasHelpFlag(t *testing.T) {
	assert.True(t, HasHelpFlag([]string{"--plat", "x", "--help"}))
	assert.True(t, HasHelpFlag([]string{"-h"}))
	assert.True(t, HasHelpFlag([]string{"help"}))
	assert.False(t, HasHelpFlag([]string{"--helpless"}))
	assert.False(t, HasHelpFlag(nil))
}
