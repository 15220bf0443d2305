/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package jeopardy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Directive names understood in a question file.
const (
	DirectiveNumCategories = "NUM_CATEGORIES"
	DirectiveNumQuestions  = "NUM_QUESTIONS_PER_CATEGORY"
	DirectiveCategory      = "CATEGORY"
	DirectiveQuestion      = "QUESTION"
	DirectiveAnswer        = "ANSWER"
)

type directive struct {
	name  string
	value string
	line  int
}

// Parser gives sequential access to the KEY=value directives of a
// question file. Blank lines and lines starting with '#' are skipped.
type Parser struct {
	directives []directive
	pos        int
}

// OpenParser reads and parses the question file at path.
func OpenParser(path string) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewParser(f)
}

// NewParser parses every directive from r up front.
func NewParser(r io.Reader) (*Parser, error) {
	p := &Parser{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		text := scanner.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		name, value, ok := strings.Cut(text, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, &InvalidQuestionFileError{
				Line:    line,
				Message: fmt.Sprintf("expected DIRECTIVE=value, got %q", text),
			}
		}

		p.directives = append(p.directives, directive{
			name:  name,
			value: strings.TrimSpace(value),
			line:  line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &InvalidQuestionFileError{
			Line:    line + 1,
			Message: fmt.Sprintf("unable to read line: %v", err),
		}
	}

	return p, nil
}

// CurrentDirective returns the label of the next unconsumed directive
// without consuming it. It returns "" once every directive is consumed.
func (p *Parser) CurrentDirective() string {
	if p.Done() {
		return ""
	}

	return p.directives[p.pos].name
}

// ConsumeValue consumes the current directive and returns its value.
func (p *Parser) ConsumeValue() (string, error) {
	if p.Done() {
		return "", fmt.Errorf("no directive left to consume: %w", ErrInvalidFormat)
	}

	value := p.directives[p.pos].value
	p.pos++

	return value, nil
}

// Done reports whether every directive has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.directives)
}

// Line returns the source line of the current directive, or 0 at the end.
func (p *Parser) Line() int {
	if p.Done() {
		return 0
	}

	return p.directives[p.pos].line
}

// Expect consumes the current directive if it is called name. purpose
// completes the error message when it is not.
func (p *Parser) Expect(name, purpose string) (string, error) {
	if p.CurrentDirective() != name {
		return "", missingDirective(name, purpose)
	}

	return p.ConsumeValue()
}
