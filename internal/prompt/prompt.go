// Package prompt reads validated values from an interactive console.
//
// Every primitive writes its prompt, reads one whole line and checks it. A
// rejected line produces one diagnostic line naming the reason and the prompt
// is shown again; there is no retry limit and no way to cancel other than
// closing the input. Validation failures therefore never reach the caller:
// the only errors returned are read errors from the input stream, io.EOF
// included.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dlclark/regexp2"
	"github.com/fatih/color"
)

// DefaultPrefix starts every diagnostic line.
const DefaultPrefix = "Error: "

// Kind classifies why an input line was rejected.
type Kind int

const (
	// EmptyInput is a line that is blank after trimming.
	EmptyInput Kind = iota + 1
	// TypeMismatch is a line that does not parse as the requested number type.
	TypeMismatch
	// OutOfRange is a number outside the inclusive bounds.
	OutOfRange
	// PatternMismatch is a line that does not fully match the pattern.
	PatternMismatch
	// InvalidYesNo is anything other than Y or N.
	InvalidYesNo
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case TypeMismatch:
		return "type mismatch"
	case OutOfRange:
		return "out of range"
	case PatternMismatch:
		return "pattern mismatch"
	case InvalidYesNo:
		return "invalid yes/no"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rejection describes one rejected input line.
type Rejection struct {
	Kind   Kind
	Input  string
	Reason string
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	prefix   string
	onReject func(Rejection)
	logger   *log.Logger
	errColor *color.Color
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithPrefix replaces DefaultPrefix on diagnostic lines.
func WithPrefix(prefix string) Option {
	return func(p *Prompter) {
		p.prefix = prefix
	}
}

// WithRejectHook registers fn to observe every rejected line.
func WithRejectHook(fn func(Rejection)) Option {
	return func(p *Prompter) {
		p.onReject = fn
	}
}

// WithLogger sets the logger used for debug traces of rejected input.
func WithLogger(logger *log.Logger) Option {
	return func(p *Prompter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		prefix:   DefaultPrefix,
		logger:   log.New(io.Discard),
		errColor: color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NonEmptyString returns the trimmed line once it is not empty.
func (p *Prompter) NonEmptyString(prompt string) (string, error) {
	for {
		line, err := p.ask(prompt + ": ")
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		p.reject(EmptyInput, line, "input must not be empty")
	}
}

// Integer returns the first line that parses as a base-10 integer.
func (p *Prompter) Integer(prompt string) (int, error) {
	for {
		line, err := p.ask(prompt + ": ")
		if err != nil {
			return 0, err
		}
		if n, ok := p.parseInt(line); ok {
			return n, nil
		}
	}
}

// Float returns the first line that parses as a floating-point number.
func (p *Prompter) Float(prompt string) (float64, error) {
	for {
		line, err := p.ask(prompt + ": ")
		if err != nil {
			return 0, err
		}
		if f, ok := p.parseFloat(line); ok {
			return f, nil
		}
	}
}

// RangedInteger returns the first integer within [low, high].
func (p *Prompter) RangedInteger(prompt string, low, high int) (int, error) {
	full := fmt.Sprintf("%s [%d - %d]: ", prompt, low, high)
	for {
		line, err := p.ask(full)
		if err != nil {
			return 0, err
		}
		n, ok := p.parseInt(line)
		if !ok {
			continue
		}
		if n >= low && n <= high {
			return n, nil
		}
		p.reject(OutOfRange, line, "input out of range")
	}
}

// RangedFloat returns the first number within [low, high].
func (p *Prompter) RangedFloat(prompt string, low, high float64) (float64, error) {
	full := fmt.Sprintf("%s [%s - %s]: ", prompt, formatFloat(low), formatFloat(high))
	for {
		line, err := p.ask(full)
		if err != nil {
			return 0, err
		}
		f, ok := p.parseFloat(line)
		if !ok {
			continue
		}
		if f >= low && f <= high {
			return f, nil
		}
		p.reject(OutOfRange, line, "input out of range")
	}
}

// YesNo returns true for Y and false for N, in either case.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		line, err := p.ask(prompt + " [Y/N]: ")
		if err != nil {
			return false, err
		}
		switch answer := strings.TrimSpace(line); {
		case strings.EqualFold(answer, "y"):
			return true, nil
		case strings.EqualFold(answer, "n"):
			return false, nil
		}
		p.reject(InvalidYesNo, line, "please enter Y or N")
	}
}

// PatternString returns the first line that matches pattern in full.
// The line is not trimmed. An invalid pattern is returned before prompting.
func (p *Prompter) PatternString(prompt, pattern string) (string, error) {
	re, err := compileFullMatch(pattern)
	if err != nil {
		return "", err
	}
	full := fmt.Sprintf("%s (pattern %s): ", prompt, pattern)
	for {
		line, err := p.ask(full)
		if err != nil {
			return "", err
		}
		ok, err := re.MatchString(line)
		if err != nil {
			return "", fmt.Errorf("failed to match pattern: %w", err)
		}
		if ok {
			return line, nil
		}
		p.reject(PatternMismatch, line, "input does not match the required pattern")
	}
}

// compileFullMatch anchors pattern at both ends of the input.
func compileFullMatch(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

func (p *Prompter) parseInt(line string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		p.reject(TypeMismatch, line, fmt.Sprintf("%q is not an integer", line))
		return 0, false
	}
	return n, true
}

func (p *Prompter) parseFloat(line string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		p.reject(TypeMismatch, line, fmt.Sprintf("%q is not a number", line))
		return 0, false
	}
	return f, true
}

// ask writes the prompt and reads one line without its terminator. A final
// line that ends at EOF without a terminator is still returned.
func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (p *Prompter) reject(kind Kind, input, reason string) {
	p.logger.Debug("input rejected", "kind", kind, "input", input)
	_, _ = p.errColor.Fprintf(p.out, "%s%s. Try again.\n", p.prefix, reason)
	if p.onReject != nil {
		p.onReject(Rejection{Kind: kind, Input: input, Reason: reason})
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
