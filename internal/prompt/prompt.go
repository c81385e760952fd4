// Package prompt reads validated answers from an interactive session.
//
// Every question in the program goes through Ask, which renders a prompt,
// reads one line and hands it to a parse function until the parse succeeds.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const choiceLabel = ">>> 입력: "

// Validation failures. Their text is shown to the user before re-prompting.
var (
	ErrNotDigits   = errors.New("잘못된 입력입니다. 숫자만 입력해 주세요.")
	ErrOutOfRange  = errors.New("메뉴 번호 범위 내에서 선택해 주세요.")
	ErrNotYesOrNo  = errors.New("Y 또는 N으로만 입력해 주세요.")
	ErrNotPositive = errors.New("양의 정수를 숫자로 입력해 주세요.")
)

type line struct {
	text string
	err  error
}

// Prompter owns the input stream and the output writer of a session.
type Prompter struct {
	out   io.Writer
	lines chan line
}

// New starts reading lines from in. Reads happen on a background goroutine
// so that a pending read can be abandoned when the context is cancelled.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out, lines: make(chan line)}
	go p.scan(bufio.NewReader(in))
	return p
}

// scan forwards lines of any length. A final line without a newline is
// still delivered before the read error.
func (p *Prompter) scan(r *bufio.Reader) {
	defer close(p.lines)
	for {
		text, err := r.ReadString('\n')
		if err != nil {
			if text != "" {
				p.lines <- line{text: strings.TrimSuffix(text, "\r")}
			}
			p.lines <- line{err: err}
			return
		}
		text = strings.TrimSuffix(text, "\n")
		p.lines <- line{text: strings.TrimSuffix(text, "\r")}
	}
}

// Out is the writer prompts and results are printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Println writes a line of output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// ReadLine prints label and waits for one line of input.
// It returns ctx.Err() on cancellation and io.EOF when input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Ask repeats render, read and parse until parse accepts the input.
// A parse error is printed and the whole cycle starts again.
func Ask[T any](ctx context.Context, p *Prompter, render func(io.Writer), label string, parse func(string) (T, error)) (T, error) {
	for {
		if render != nil {
			render(p.out)
		}
		text, err := p.ReadLine(ctx, label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(text)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, err)
	}
}

// ChooseIndex shows a numbered menu and returns the 1-based index picked.
func (p *Prompter) ChooseIndex(ctx context.Context, header string, options []string) (int, error) {
	render := func(w io.Writer) {
		if header != "" {
			fmt.Fprintln(w, header)
		}
		for i, opt := range options {
			fmt.Fprintf(w, "%d. %s\n", i+1, opt)
		}
	}
	return Ask(ctx, p, render, choiceLabel, func(s string) (int, error) {
		return ParseChoice(s, len(options))
	})
}

// Choose is ChooseIndex returning the option text instead of its position.
func (p *Prompter) Choose(ctx context.Context, header string, options []string) (string, error) {
	idx, err := p.ChooseIndex(ctx, header, options)
	if err != nil {
		return "", err
	}
	return options[idx-1], nil
}

// Text reads a trimmed, non-empty line. emptyMsg is shown for blank input.
func (p *Prompter) Text(ctx context.Context, label, emptyMsg string) (string, error) {
	return Ask(ctx, p, nil, label, func(s string) (string, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errors.New(emptyMsg)
		}
		return s, nil
	})
}

// PositiveInt reads an integer greater than zero. invalidMsg replaces the
// default ErrNotPositive text when it is not empty.
func (p *Prompter) PositiveInt(ctx context.Context, label, invalidMsg string) (int, error) {
	return Ask(ctx, p, nil, label, func(s string) (int, error) {
		v, err := ParsePositiveInt(s)
		if err != nil && invalidMsg != "" {
			return 0, errors.New(invalidMsg)
		}
		return v, err
	})
}

// YesNo reads a Y or N answer, case-insensitive.
func (p *Prompter) YesNo(ctx context.Context, label string) (bool, error) {
	return Ask(ctx, p, nil, label, ParseYesNo)
}

// ParseChoice accepts only ASCII digits naming an option in [1, n].
func ParseChoice(s string, n int) (int, error) {
	if s == "" {
		return 0, ErrNotDigits
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotDigits
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, ErrOutOfRange
	}
	return v, nil
}

func ParsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

func ParseYesNo(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, ErrNotYesOrNo
}
