package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	errgo "gopkg.in/errgo.v1"

	"lifeee/pkg/life"
)

//go:embed lexicon.txt
var catalog string

// Default returns the lexicon built into the binary. The catalog is parsed
// on first use and the result shared by every caller.
var Default = sync.OnceValues(func() (*Lexicon, error) {
	return Load(catalog)
})

// Term is a named pattern. Cells are offsets from the pattern's own origin.
// A Term without cells is a placeholder entry.
type Term struct {
	Name        string
	Tags        []string
	Description string
	Cells       []life.Cell
}

// Empty reports whether the term carries no pattern.
func (t Term) Empty() bool { return len(t.Cells) == 0 }

// Size returns the width and height of the pattern, derived from its largest
// coordinates.
func (t Term) Size() (w, h int32) {
	for _, c := range t.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// CellSet returns the pattern as a live-cell set at its own origin.
func (t Term) CellSet() life.CellSet { return life.NewCellSet(t.Cells...) }

// Lexicon is an ordered, read-only catalog of terms.
type Lexicon struct {
	terms []Term
}

// Terms returns the terms in catalog order. Callers must not modify the
// returned terms.
func (l *Lexicon) Terms() []Term { return slices.Clone(l.terms) }

// Len returns the number of terms.
func (l *Lexicon) Len() int { return len(l.terms) }

// Term returns the first term with exactly the given name.
func (l *Lexicon) Term(name string) (Term, bool) {
	for _, t := range l.terms {
		if t.Name == name {
			return t, true
		}
	}
	return Term{}, false
}

// Populated returns, in catalog order, the terms that carry a pattern.
func (l *Lexicon) Populated() []Term {
	var out []Term
	for _, t := range l.terms {
		if !t.Empty() {
			out = append(out, t)
		}
	}
	return out
}

// ParseError describes malformed catalog text.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lexicon: line %d: %s", e.Line, e.Msg)
}

// Load parses catalog text held in memory.
func Load(src string) (*Lexicon, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads a whole catalog from r. On failure no lexicon is returned; a
// grammar error is reported as a *ParseError.
func Parse(r io.Reader) (*Lexicon, error) {
	scan := bufio.NewScanner(r)
	scan.Buffer(nil, 1024*1024)
	p := &parser{scan: scan}
	lex, err := p.parse()
	if err != nil {
		if _, ok := err.(*ParseError); ok {
			return nil, err
		}
		return nil, errgo.Mask(err)
	}
	return lex, nil
}

const delimiter = "----"

type parser struct {
	scan *bufio.Scanner
	line int
	text string
}

// next advances to the following line. It returns false at end of input or
// on a read error, which is then returned by p.eof.
func (p *parser) next() bool {
	if !p.scan.Scan() {
		return false
	}
	p.line++
	p.text = strings.TrimSuffix(p.scan.Text(), "\r")
	return true
}

func (p *parser) errorf(f string, a ...interface{}) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(f, a...)}
}

func (p *parser) eof(where string) error {
	if err := p.scan.Err(); err != nil {
		return errgo.Notef(err, "cannot read catalog")
	}
	return p.errorf("unexpected end of input %s", where)
}

func (p *parser) parse() (*Lexicon, error) {
	for {
		if !p.next() {
			return nil, p.eof("before opening " + delimiter)
		}
		if strings.HasPrefix(p.text, delimiter) {
			break
		}
	}

	lex := &Lexicon{}
	for {
		if !p.next() {
			return nil, p.eof("before closing " + delimiter)
		}
		switch {
		case strings.HasPrefix(p.text, delimiter):
			return lex, nil
		case strings.HasPrefix(p.text, ":"):
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			lex.terms = append(lex.terms, t)
		}
	}
}

// parseTerm reads one block starting at the header line in p.text.
func (p *parser) parseTerm() (Term, error) {
	name, rest, ok := splitHeader(p.text)
	if !ok {
		return Term{}, p.errorf("cannot parse term name in %q", p.text)
	}
	t := Term{Name: name}
	t.Tags, rest = splitTags(rest)
	var desc []string
	if rest != "" {
		desc = append(desc, rest)
	}

	var row int32
	for {
		if !p.next() {
			return Term{}, p.eof(fmt.Sprintf("in term %q", name))
		}
		if p.text == "" {
			break
		}
		if line, ok := strings.CutPrefix(p.text, "\t"); ok {
			t.Cells = append(t.Cells, rowCells(line, row)...)
			row++
			continue
		}
		if s := strings.TrimSpace(p.text); s != "" {
			desc = append(desc, s)
		}
	}
	t.Description = strings.Join(desc, " ")
	return t, nil
}

// splitHeader splits ":name: rest" into its name and trimmed remainder.
func splitHeader(line string) (name, rest string, ok bool) {
	s, ok := strings.CutPrefix(line, ":")
	if !ok {
		return "", "", false
	}
	name, rest, ok = strings.Cut(s, ":")
	if !ok || name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(rest), true
}

// splitTags removes leading parenthesised groups such as "(p2)" or
// "(c/4 diagonal, p4)" from s.
func splitTags(s string) (tags []string, rest string) {
	for strings.HasPrefix(s, "(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			break
		}
		for _, tag := range strings.Split(s[1:end], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		s = strings.TrimSpace(s[end+1:])
	}
	return tags, s
}

func rowCells(line string, y int32) []life.Cell {
	var cells []life.Cell
	var x int32
	for _, r := range line {
		if r == '*' {
			cells = append(cells, life.Cell{X: x, Y: y})
		}
		x++
	}
	return cells
}
