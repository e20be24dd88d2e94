package gxt

import (
	"fmt"
	"strings"
)

// Platform selects the on-wire record geometry.
type Platform int

const (
	// PlatformPSP is the default console build with 8-byte names.
	PlatformPSP Platform = iota
	// PlatformPS2 shares the PSP layout.
	PlatformPS2
	// PlatformPC widens names to 12 bytes.
	PlatformPC
)

const (
	consoleNameWidth = 8
	pcNameWidth      = 12
)

// Platforms lists every supported platform in CLI display order.
var Platforms = []Platform{PlatformPC, PlatformPSP, PlatformPS2}

// ParsePlatform resolves a case-insensitive platform name.
func ParsePlatform(value string) (Platform, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "PSP", "":
		return PlatformPSP, nil
	case "PS2":
		return PlatformPS2, nil
	case "PC":
		return PlatformPC, nil
	default:
		return PlatformPSP, fmt.Errorf("unknown platform %q (want PC, PSP, or PS2)", value)
	}
}

// NameWidth is the fixed byte width of the name field.
func (p Platform) NameWidth() int {
	if p == PlatformPC {
		return pcNameWidth
	}
	return consoleNameWidth
}

// EntrySize is the byte size of one key-table entry.
func (p Platform) EntrySize() int {
	return 4 + p.NameWidth() + 4
}

func (p Platform) String() string {
	switch p {
	case PlatformPS2:
		return "PS2"
	case PlatformPC:
		return "PC"
	default:
		return "PSP"
	}
}

// Set implements pflag.Value so Platform can back a command-line flag.
func (p *Platform) Set(value string) error {
	parsed, err := ParsePlatform(value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *Platform) Type() string {
	return "platform"
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
