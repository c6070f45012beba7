package handlers

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/epeers/stocklens/internal/theme"
)

// ANSI escape codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorBlack  = "\033[30m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Palette is the set of colours used for one theme
type Palette struct {
	Heading  string
	Label    string
	Positive string
	Negative string
	Muted    string
}

var palettes = map[theme.Theme]Palette{
	theme.Dark: {
		Heading:  ColorBold + ColorCyan,
		Label:    ColorWhite,
		Positive: ColorGreen,
		Negative: ColorRed,
		Muted:    ColorDim,
	},
	theme.Light: {
		Heading:  ColorBold + ColorBlue,
		Label:    ColorBlack,
		Positive: ColorGreen,
		Negative: ColorRed,
		Muted:    ColorPurple,
	},
}

// Printer writes command output, coloured by the current theme when colour is on.
// It implements theme.Applier so the theme store keeps it in sync.
type Printer struct {
	w     io.Writer
	color bool

	mu      sync.Mutex
	palette Palette
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color, palette: palettes[theme.Light]}
}

// Apply switches the palette
func (p *Printer) Apply(attribute string, t theme.Theme) {
	if attribute != theme.Attribute {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if palette, ok := palettes[t]; ok {
		p.palette = palette
	}
}

func (p *Printer) paint(code, s string) string {
	if !p.color || code == "" {
		return s
	}
	return code + s + ColorReset
}

func (p *Printer) current() Palette {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.palette
}

// Printf writes unstyled text
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Heading writes a title underlined with '='
func (p *Printer) Heading(title string) {
	h := p.current().Heading
	fmt.Fprintln(p.w, p.paint(h, title))
	fmt.Fprintln(p.w, p.paint(h, strings.Repeat("=", len([]rune(title)))))
}

// Section writes a sub-heading
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.paint(p.current().Heading, title))
}

// Field writes one "label: value" line
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.paint(p.current().Label, fmt.Sprintf("%-24s", label+":")), value)
}

// Muted writes a dimmed line
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.paint(p.current().Muted, fmt.Sprintf(format, args...)))
}

// Signed colours s by the sign of v; nil is left unstyled
func (p *Printer) Signed(v *float64, s string) string {
	switch {
	case v == nil:
		return s
	case *v > 0:
		return p.paint(p.current().Positive, s)
	case *v < 0:
		return p.paint(p.current().Negative, s)
	default:
		return s
	}
}

// Row writes cells padded to widths; the first cell is left-aligned, the rest right-aligned
func (p *Printer) Row(widths []int, cells ...string) {
	var sb strings.Builder
	for i, cell := range cells {
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		pad := width - len([]rune(stripANSI(cell)))
		if pad < 0 {
			pad = 0
		}
		if i == 0 {
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", pad))
		} else {
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(cell)
		}
	}
	fmt.Fprintln(p.w, strings.TrimRight(sb.String(), " "))
}

// HeaderRow writes a Row in the heading colour
func (p *Printer) HeaderRow(widths []int, cells ...string) {
	painted := make([]string, len(cells))
	for i, c := range cells {
		painted[i] = p.paint(p.current().Heading, c)
	}
	p.Row(widths, painted...)
}

func stripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
