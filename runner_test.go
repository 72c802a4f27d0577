package esregex

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

type runner struct {
	t          *testing.T
	edition    Edition
	unicode    bool
	strictMode bool
}

func newRunner(t *testing.T) runner {
	return runner{
		t:       t,
		edition: Latest,
	}
}

func (r runner) es(e Edition) *runner {
	r.edition = e
	return &r
}

func (r runner) u() *runner {
	r.unicode = true
	return &r
}

// Disable Annex B.
func (r runner) strict() *runner {
	r.strictMode = true
	return &r
}

func (r *runner) validator() *Validator {
	if r.strictMode {
		return New(r.edition, Strict())
	}
	return New(r.edition)
}

func (r *runner) describe(pattern []uint16) string {
	var rd reader
	rd.reset(pattern, 0, len(pattern), false)
	res := "/" + rd.stringInRange(0, len(pattern)) + "/"
	if r.unicode {
		res += "u"
	}
	res += " " + r.edition.String()
	if r.strictMode {
		res += " strict"
	}
	return res
}

// Valid
func (r *runner) v(pattern string) {
	r.v16(u16e(pattern))
}
func (r *runner) v16(pattern []uint16) {
	r.t.Run("", func(t *testing.T) {
		t.Parallel()
		t.Logf("Expected valid: %s", r.describe(pattern))
		assert.NilError(t, r.validator().ValidatePatternUtf16(pattern, r.unicode))
	})
}

// Syntax Error, optionally of the given kind.
func (r *runner) se(pattern string, kind ...ErrorKind) {
	r.se16(u16e(pattern), kind...)
}
func (r *runner) se16(pattern []uint16, kind ...ErrorKind) {
	r.t.Run("", func(t *testing.T) {
		t.Parallel()
		t.Logf("Expected SyntaxError: %s", r.describe(pattern))
		err := r.validator().ValidatePatternUtf16(pattern, r.unicode)
		assert.Assert(t, err != nil, "no error")
		var se SyntaxError
		assert.Assert(t, errors.As(err, &se), "unexpected error type %T", err)
		if len(kind) > 0 {
			assert.Equal(t, se.Kind, kind[0], "got %v", err)
		}
	})
}
