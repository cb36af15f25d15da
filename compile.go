package xq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath reports that an expression does not conform to the terse
// path syntax.
var ErrInvalidPath = errors.New("invalid path")

func pathErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidPath}, args...)...)
}

// Compile turns a terse path expression into a composite key.
//
// Steps are separated by '/'. A bare name is a tag step, a name followed by
// brackets is a filter step ("Param[]" keeps every Param child,
// "Param[name=FAR]" keeps only those whose name attribute equals FAR), and
// an integer is a positional step into the preceding sequence:
//
//	What/Param[name=FAR]/0
//
// Attribute values are taken verbatim up to the closing bracket; leading
// and trailing space around the attribute name is ignored.
func Compile(expr string) (CompositeKey, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return CompositeKey{}, pathErrorf("expression cannot be empty")
	}
	if strings.HasPrefix(trimmed, "/") {
		return CompositeKey{}, pathErrorf("expression must be relative: %s", expr)
	}

	scanner := &pathScanner{input: trimmed}
	var keys []Key
	for {
		step, err := scanner.readStep()
		if err != nil {
			return CompositeKey{}, err
		}
		key, err := compileStep(step)
		if err != nil {
			return CompositeKey{}, err
		}
		keys = append(keys, key)

		if scanner.atEnd() {
			return Chain(keys...), nil
		}
		scanner.consumeSlash()
		if scanner.atEnd() {
			return CompositeKey{}, pathErrorf("expression has a trailing slash: %s", expr)
		}
	}
}

func compileStep(step string) (Key, error) {
	if index, err := strconv.Atoi(step); err == nil {
		return At(index), nil
	}

	open := strings.IndexByte(step, '[')
	if open < 0 {
		return Tag(step), nil
	}

	name := step[:open]
	if name == "" {
		return nil, pathErrorf("step is missing a tag: %q", step)
	}
	if !strings.HasSuffix(step, "]") {
		return nil, pathErrorf("step has an unterminated filter: %q", step)
	}
	body := step[open+1 : len(step)-1]
	if body == "" {
		return All(name), nil
	}

	attr, value, ok := strings.Cut(body, "=")
	if !ok {
		return nil, pathErrorf("filter must be attr=value: %q", step)
	}
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return nil, pathErrorf("filter has an empty attribute name: %q", step)
	}
	return Where(name, attr, value), nil
}

// pathScanner walks an expression byte by byte so that slashes inside a
// filter body do not split a step.
type pathScanner struct {
	input string
	pos   int
}

func (s *pathScanner) readStep() (string, error) {
	start := s.pos
	depth := 0
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return "", pathErrorf("step has an unmatched ']': %s", s.input)
			}
			depth--
		case '/':
			if depth == 0 {
				return s.finishStep(start)
			}
		}
		s.pos++
	}
	if depth != 0 {
		return "", pathErrorf("step has an unterminated filter: %s", s.input)
	}
	return s.finishStep(start)
}

func (s *pathScanner) finishStep(start int) (string, error) {
	step := strings.TrimSpace(s.input[start:s.pos])
	if step == "" {
		return "", pathErrorf("expression has an empty step: %s", s.input)
	}
	return step, nil
}

func (s *pathScanner) consumeSlash() {
	if s.pos < len(s.input) && s.input[s.pos] == '/' {
		s.pos++
	}
}

func (s *pathScanner) atEnd() bool {
	return s.pos >= len(s.input)
}
