package formula

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
	"unicode"
)

// Term is a single model term: one variable for a main effect, several
// variables for an interaction.
type Term struct {
	// Vars holds the component variable names in order of appearance.
	Vars []string
}

// Degree returns the interaction order of the term (1 for a main effect).
func (t Term) Degree() int {
	return len(t.Vars)
}

// String returns the term in a:b form.
func (t Term) String() string {
	return strings.Join(t.Vars, ":")
}

// key returns an order-insensitive identity for the term, so that a:b and
// b:a collapse to one term.
func (t Term) key() string {
	sorted := make([]string, len(t.Vars))
	copy(sorted, t.Vars)
	sort.Strings(sorted)

	return strings.Join(sorted, ":")
}

// Formula is a parsed model formula.
type Formula struct {
	// Response is the left-hand side variable, empty when the formula has
	// no ~ part.
	Response string
	// Intercept reports whether the model carries an intercept column.
	Intercept bool
	// Terms holds the expanded, de-duplicated model terms ordered by
	// interaction degree and then first appearance. The intercept is not a
	// Term.
	Terms []Term

	expr string
}

// String returns the formula as it was given to Parse.
func (f *Formula) String() string {
	return f.expr
}

// Parse parses a model formula.
//
// The grammar accepts an optional "response ~" prefix followed by terms
// joined with +, interactions written a:b, crossings written a*b, and the
// intercept markers 1, 0 and -1. See the package documentation for the full
// rules. Parse fails with ErrMalformedFormula for anything else.
func Parse(expr string) (*Formula, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, fmt.Errorf("%w: empty formula", ErrMalformedFormula)
	}

	f := &Formula{Intercept: true, expr: s}

	if lhs, rhs, found := strings.Cut(s, "~"); found {
		lhs = strings.TrimSpace(lhs)
		if lhs != "" && !isIdent(lhs) {
			return nil, fmt.Errorf("%w: invalid response %q", ErrMalformedFormula, lhs)
		}
		if strings.Contains(rhs, "~") {
			return nil, fmt.Errorf("%w: multiple ~ operators", ErrMalformedFormula)
		}
		f.Response = lhs
		s = strings.TrimSpace(rhs)
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty right-hand side", ErrMalformedFormula)
	}

	chunks, err := splitChunks(s)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, ch := range chunks {
		switch ch.text {
		case "1":
			f.Intercept = !ch.neg
		case "0":
			if ch.neg {
				return nil, fmt.Errorf("%w: cannot remove term 0", ErrMalformedFormula)
			}
			f.Intercept = false
		default:
			terms, err := expandChunk(ch.text)
			if err != nil {
				return nil, err
			}
			for _, t := range terms {
				if ch.neg {
					f.removeTerm(t, seen)
				} else if !seen[t.key()] {
					seen[t.key()] = true
					f.Terms = append(f.Terms, t)
				}
			}
		}
	}

	if !f.Intercept && len(f.Terms) == 0 {
		return nil, fmt.Errorf("%w: formula has no terms", ErrMalformedFormula)
	}

	// Stable sort keeps appearance order within each interaction degree.
	sort.SliceStable(f.Terms, func(i, j int) bool {
		return f.Terms[i].Degree() < f.Terms[j].Degree()
	})

	return f, nil
}

func (f *Formula) removeTerm(t Term, seen map[string]bool) {
	key := t.key()
	if !seen[key] {
		return
	}
	delete(seen, key)
	for i, existing := range f.Terms {
		if existing.key() == key {
			f.Terms = append(f.Terms[:i], f.Terms[i+1:]...)
			return
		}
	}
}

type chunk struct {
	neg  bool
	text string
}

// splitChunks splits the right-hand side on top-level + and - operators.
func splitChunks(s string) ([]chunk, error) {
	var (
		chunks []chunk
		cur    strings.Builder
		neg    bool
	)

	flush := func() error {
		text := strings.TrimSpace(cur.String())
		if text == "" {
			return fmt.Errorf("%w: empty term in %q", ErrMalformedFormula, s)
		}
		chunks = append(chunks, chunk{neg: neg, text: text})
		cur.Reset()

		return nil
	}

	for _, r := range s {
		switch r {
		case '+', '-':
			if err := flush(); err != nil {
				return nil, err
			}
			neg = r == '-'
		default:
			cur.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return chunks, nil
}

// expandChunk parses a single +-separated chunk, expanding * crossings into
// the full set of sub-terms.
func expandChunk(text string) ([]Term, error) {
	segTexts := strings.Split(text, "*")
	segs := make([]Term, len(segTexts))
	for i, segText := range segTexts {
		t, err := parseInteraction(segText)
		if err != nil {
			return nil, err
		}
		segs[i] = t
	}
	if len(segs) == 1 {
		return segs, nil
	}

	// a*b*c expands to every non-empty subset of {a, b, c}, smallest
	// subsets first so main effects precede their interactions.
	masks := make([]uint, 0, 1<<len(segs)-1)
	for m := uint(1); m < 1<<len(segs); m++ {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool {
		bi, bj := bits.OnesCount(masks[i]), bits.OnesCount(masks[j])
		if bi != bj {
			return bi < bj
		}

		return masks[i] < masks[j]
	})

	terms := make([]Term, 0, len(masks))
	for _, m := range masks {
		var t Term
		for i, seg := range segs {
			if m&(1<<i) != 0 {
				t.Vars = appendUniqueVars(t.Vars, seg.Vars)
			}
		}
		terms = append(terms, t)
	}

	return terms, nil
}

// parseInteraction parses a :-joined interaction such as a:b:c.
func parseInteraction(text string) (Term, error) {
	var t Term
	for _, part := range strings.Split(text, ":") {
		v := strings.TrimSpace(part)
		if v == "" {
			return Term{}, fmt.Errorf("%w: empty interaction component in %q", ErrMalformedFormula, text)
		}
		if !isIdent(v) {
			return Term{}, fmt.Errorf("%w: invalid variable %q", ErrMalformedFormula, v)
		}
		t.Vars = appendUniqueVars(t.Vars, []string{v})
	}

	return t, nil
}

func appendUniqueVars(dst []string, vars []string) []string {
	for _, v := range vars {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}

	return dst
}

// isIdent reports whether s is a valid variable name: a letter or
// underscore followed by letters, digits, underscores or dots.
func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '.'):
		default:
			return false
		}
	}

	return s != ""
}
