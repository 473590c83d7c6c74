package pattern

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/rules"
)

const (
	// maxExtent bounds declared widths/heights and single run counts.
	maxExtent = 1 << 20
	// maxArea bounds the declared bounding box, and so the number of live cells.
	maxArea = 1 << 24
)

var headerPattern = regexp.MustCompile(`^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)\s*(?:,\s*rule\s*=\s*(\S*)\s*)?$`)

// Offset is the position of a live cell relative to the pattern's top-left corner.
type Offset struct {
	DX, DY int
}

// Pattern is a decoded RLE shape. It is immutable once returned by Parse.
type Pattern struct {
	name     string
	author   string
	comments []string
	width    int
	height   int
	rule     string
	cells    []Offset
}

// New builds a pattern from offsets, checking that each lies inside width x height.
func New(width, height int, cells []Offset) (*Pattern, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("[pattern.New] negative extent %dx%d", width, height)
	}
	for _, c := range cells {
		if c.DX < 0 || c.DX >= width || c.DY < 0 || c.DY >= height {
			return nil, errors.Errorf("[pattern.New] offset (%d,%d) outside %dx%d", c.DX, c.DY, width, height)
		}
	}
	return &Pattern{width: width, height: height, rule: rules.Rule, cells: append([]Offset(nil), cells...)}, nil
}

// Name returns the #N line, if any.
func (p *Pattern) Name() string { return p.name }

// Author returns the #O line, if any.
func (p *Pattern) Author() string { return p.author }

// Comments returns the #C lines in document order.
func (p *Pattern) Comments() []string { return append([]string(nil), p.comments...) }

// Width returns the declared bounding width.
func (p *Pattern) Width() int { return p.width }

// Height returns the declared bounding height.
func (p *Pattern) Height() int { return p.height }

// Rule returns the declared rulestring, or "" when the header has none.
func (p *Pattern) Rule() string { return p.rule }

// StandardRule reports whether the declared rule is B3/S23. Patterns without a
// rule are assumed to be standard.
func (p *Pattern) StandardRule() bool { return p.rule == "" || rules.IsStandard(p.rule) }

// Population returns the number of live cells.
func (p *Pattern) Population() int { return len(p.cells) }

// Cells returns a copy of the live cell offsets in decode order.
func (p *Pattern) Cells() []Offset { return append([]Offset(nil), p.cells...) }

// ParseString is Parse for string input.
func ParseString(rle string) (*Pattern, error) {
	return Parse([]byte(rle))
}

// Parse decodes an RLE document. Parsing is all-or-nothing: on error no
// pattern is returned and the error is a *MalformedError.
func Parse(data []byte) (*Pattern, error) {
	var (
		p      = &Pattern{}
		b      body
		header bool
		lineNo int
		rest   = data
	)
	for len(rest) > 0 && !b.done {
		var line []byte
		line, rest, _ = bytes.Cut(rest, []byte{'\n'})
		lineNo++
		trimmed := bytes.TrimSpace(line)
		switch {
		case len(trimmed) == 0:
			continue
		case trimmed[0] == '#' && !b.pending():
			p.comment(string(trimmed))
		case !header:
			if err := p.parseHeader(string(trimmed), lineNo); err != nil {
				return nil, err
			}
			header = true
			b.width, b.height = p.width, p.height
		default:
			if err := b.feed(trimmed, lineNo); err != nil {
				return nil, err
			}
		}
	}
	if !header {
		return nil, malformed(ReasonMissingHeader, 0, 0, "no \"x = <int>, y = <int>\" line found")
	}
	if !b.done {
		return nil, malformed(ReasonMissingTerminator, lineNo, 0, "body does not end with '!'")
	}
	p.cells = b.cells
	return p, nil
}

func (p *Pattern) comment(line string) {
	if len(line) < 2 {
		return
	}
	text := strings.TrimSpace(line[2:])
	switch line[1] {
	case 'N':
		p.name = text
	case 'O':
		p.author = text
	case 'C', 'c':
		p.comments = append(p.comments, text)
	}
}

func (p *Pattern) parseHeader(line string, lineNo int) error {
	if line[0] != 'x' {
		return malformed(ReasonMissingHeader, lineNo, 1, "expected header, found %q", truncate(line))
	}
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return malformed(ReasonMalformedHeader, lineNo, 0, "cannot read %q", truncate(line))
	}
	var err error
	if p.width, err = headerExtent(m[1], lineNo, "x"); err != nil {
		return err
	}
	if p.height, err = headerExtent(m[2], lineNo, "y"); err != nil {
		return err
	}
	if int64(p.width)*int64(p.height) > maxArea {
		return malformed(ReasonCountOverflow, lineNo, 0, "%dx%d box exceeds %d cells", p.width, p.height, maxArea)
	}
	p.rule = m[3]
	return nil
}

func headerExtent(digits string, lineNo int, axis string) (int, error) {
	v, err := strconv.Atoi(digits)
	if err != nil || v > maxExtent {
		return 0, malformed(ReasonCountOverflow, lineNo, 0, "%s = %s exceeds %d", axis, digits, maxExtent)
	}
	return v, nil
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

// body is the run-token decoder state carried across lines.
type body struct {
	width, height int
	x, y          int
	count         int
	hasCount      bool
	done          bool
	cells         []Offset
}

func (b *body) pending() bool { return b.hasCount }

// take consumes the pending run count, defaulting to 1.
func (b *body) take() int {
	n := 1
	if b.hasCount {
		n = b.count
	}
	b.count, b.hasCount = 0, false
	return n
}

func (b *body) feed(line []byte, lineNo int) error {
	for i, c := range line {
		col := i + 1
		switch {
		case c >= '0' && c <= '9':
			if !b.hasCount && c == '0' {
				return malformed(ReasonInvalidCount, lineNo, col, "run count may not start with 0")
			}
			b.count = b.count*10 + int(c-'0')
			b.hasCount = true
			if b.count > maxExtent {
				return malformed(ReasonCountOverflow, lineNo, col, "run count exceeds %d", maxExtent)
			}
		case c == 'b' || c == '.' || c == 'o':
			n := b.take()
			if b.y >= b.height {
				return malformed(ReasonExceedsBounds, lineNo, col, "row %d beyond declared y = %d", b.y+1, b.height)
			}
			if b.x+n > b.width {
				return malformed(ReasonExceedsBounds, lineNo, col, "row %d is %d cells wide, declared x = %d", b.y+1, b.x+n, b.width)
			}
			if c == 'o' {
				for dx := range n {
					b.cells = append(b.cells, Offset{DX: b.x + dx, DY: b.y})
				}
			}
			b.x += n
		case c == '$':
			b.y += b.take()
			b.x = 0
			if b.y > b.height {
				return malformed(ReasonExceedsBounds, lineNo, col, "row %d beyond declared y = %d", b.y+1, b.height)
			}
		case c == '!':
			if b.hasCount {
				return malformed(ReasonUnexpectedCharacter, lineNo, col, "run count before '!'")
			}
			b.done = true
			return nil
		case c == ' ' || c == '\t' || c == '\r':
		default:
			return malformed(ReasonUnexpectedCharacter, lineNo, col, "unexpected %q", c)
		}
	}
	return nil
}
