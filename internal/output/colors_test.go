package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mobil-koeln/trainfinder/internal/testutil"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},
		{"invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, ParseColorMode(tt.input), tt.want)
		})
	}
}

func TestNewColors_NeverMode(t *testing.T) {
	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Title("Rajdhani Express (12951)"), "Rajdhani Express (12951)")
	testutil.AssertEqual(t, c.Station("New Delhi"), "New Delhi")
	testutil.AssertEqual(t, c.Time("08:35"), "08:35")
	testutil.AssertEqual(t, c.Platform("3"), "3")
	testutil.AssertEqual(t, c.Missing(NotAvailable), NotAvailable)
	testutil.AssertEqual(t, c.Error("Failed to fetch data"), "Failed to fetch data")
}

func TestNewColors_NeverModeKeepsPercentLiteral(t *testing.T) {
	c := NewColors(ColorNever)
	testutil.AssertEqual(t, c.Message("100% full"), "100% full")
	testutil.AssertEqual(t, c.Message("%s", "50% off"), "50% off")
}

func TestNewColors_AlwaysMode(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	c := NewColors(ColorAlways)

	result := c.Title("Rajdhani")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertContains(t, result, "Rajdhani")

	result = c.Error("Failed")
	testutil.AssertContains(t, result, "\033[")
	testutil.AssertEqual(t, stripANSI(result), "Failed")
}

func TestNewColorsFor_AutoUsesTargetWriter(t *testing.T) {
	var buf bytes.Buffer
	c := NewColorsFor(ColorAuto, &buf)
	testutil.AssertEqual(t, c.Error("Failed to fetch data"), "Failed to fetch data")

	f, err := os.CreateTemp(t.TempDir(), "stderr")
	testutil.AssertNil(t, err)
	defer func() { _ = f.Close() }()

	c = NewColorsFor(ColorAuto, f)
	testutil.AssertEqual(t, c.Error("Failed to fetch data"), "Failed to fetch data")
}

func TestNewColorsFor_AlwaysIgnoresWriter(t *testing.T) {
	var buf bytes.Buffer
	c := NewColorsFor(ColorAlways, &buf)
	testutil.AssertContains(t, c.Error("Failed"), "\033[")
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertFalse(t, isTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	testutil.AssertNil(t, err)
	defer func() { _ = f.Close() }()
	testutil.AssertFalse(t, isTerminal(f))
}

func TestColors_Value(t *testing.T) {
	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Value("", c.Time), NotAvailable)
	testutil.AssertEqual(t, c.Value("17:00", c.Time), "17:00")
	testutil.AssertEqual(t, c.Value("5%", c.Platform), "5%")
}

func TestColors_Sprintf(t *testing.T) {
	c := NewColors(ColorNever)

	testutil.AssertEqual(t, c.Time("%02d:%02d", 14, 30), "14:30")
	testutil.AssertEqual(t, c.Platform("Pl.%s", "7"), "Pl.7")
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
