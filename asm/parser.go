package asm

import (
	"bufio"
	"io"
	"strings"
)

// Parser is a restartable cursor over the commands of a Hack assembly source.
// The source is read and classified once; Rewind never re-reads it.
type Parser struct {
	commands []Command
	lineno   []int
	lines    []string
	index    int
}

// NewParser reads and classifies every line of input.
func NewParser(input io.Reader) (p *Parser, err error) {
	scanner := bufio.NewScanner(input)

	p = &Parser{index: -1}

	lineno := 0
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		var cmd Command
		cmd, err = ParseCommand(text)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: err}
			p = nil
			return
		}
		if cmd == nil {
			continue
		}

		line, _, _ := strings.Cut(text, "//")
		p.commands = append(p.commands, cmd)
		p.lineno = append(p.lineno, lineno)
		p.lines = append(p.lines, strings.TrimSpace(line))
	}

	err = scanner.Err()
	if err != nil {
		p = nil
	}

	return
}

// Len returns the number of commands in the source.
func (p *Parser) Len() int {
	return len(p.commands)
}

// Advance moves to the next command, returning false when the commands are exhausted.
func (p *Parser) Advance() bool {
	if p.index < len(p.commands) {
		p.index++
	}
	return p.index < len(p.commands)
}

// Rewind positions the cursor before the first command.
func (p *Parser) Rewind() {
	p.index = -1
}

func (p *Parser) valid() bool {
	return p.index >= 0 && p.index < len(p.commands)
}

// Command returns the current command, or nil if the cursor is not on one.
func (p *Parser) Command() Command {
	if !p.valid() {
		return nil
	}
	return p.commands[p.index]
}

// CommandType returns the type of the current command.
func (p *Parser) CommandType() (ct CommandType, ok bool) {
	if !p.valid() {
		return
	}
	return p.commands[p.index].Type(), true
}

// LineNo returns the 1-based source line of the current command, or 0.
func (p *Parser) LineNo() int {
	if !p.valid() {
		return 0
	}
	return p.lineno[p.index]
}

// Line returns the source text of the current command without its comment.
func (p *Parser) Line() string {
	if !p.valid() {
		return ""
	}
	return p.lines[p.index]
}
