package asm

import (
	"strings"
)

// CommandType is the kind of a classified source line.
type CommandType int

//go:generate go tool stringer -linecomment -type=CommandType
const (
	COMMAND_ADDRESS = CommandType(0) // address
	COMMAND_COMPUTE = CommandType(1) // compute
	COMMAND_LABEL   = CommandType(2) // label
)

// Command is a single classified line of Hack assembly.
type Command interface {
	Type() CommandType
	String() string
}

// AddressCommand loads a literal or symbol address into the A register.
type AddressCommand struct {
	Operand string
}

func (cmd *AddressCommand) Type() CommandType {
	return COMMAND_ADDRESS
}

func (cmd *AddressCommand) String() string {
	return "@" + cmd.Operand
}

// ComputeCommand selects an ALU computation, with optional destination and jump.
// An empty Dest or Jump is absent.
type ComputeCommand struct {
	Dest string
	Comp string
	Jump string
}

func (cmd *ComputeCommand) Type() CommandType {
	return COMMAND_COMPUTE
}

func (cmd *ComputeCommand) String() string {
	var sb strings.Builder
	if len(cmd.Dest) != 0 {
		sb.WriteString(cmd.Dest)
		sb.WriteByte('=')
	}
	sb.WriteString(cmd.Comp)
	if len(cmd.Jump) != 0 {
		sb.WriteByte(';')
		sb.WriteString(cmd.Jump)
	}
	return sb.String()
}

// LabelCommand names the address of the next instruction.
type LabelCommand struct {
	Name string
}

func (cmd *LabelCommand) Type() CommandType {
	return COMMAND_LABEL
}

func (cmd *LabelCommand) String() string {
	return "(" + cmd.Name + ")"
}

var (
	_ Command = (*AddressCommand)(nil)
	_ Command = (*ComputeCommand)(nil)
	_ Command = (*LabelCommand)(nil)
)

// ParseCommand classifies a single source line.
// Blank and comment-only lines return a nil Command and no error.
func ParseCommand(line string) (cmd Command, err error) {
	line, _, _ = strings.Cut(line, "//")
	line = strings.TrimSpace(line)

	if len(line) == 0 {
		return
	}

	switch line[0] {
	case '(':
		if !strings.HasSuffix(line, ")") {
			err = ErrLabelSyntax
			return
		}
		name := strings.TrimSpace(line[1 : len(line)-1])
		if len(name) == 0 {
			err = ErrLabelMissing
			return
		}
		if !validSymbol(name) {
			err = ErrSymbolInvalid(name)
			return
		}
		cmd = &LabelCommand{Name: name}
	case '@':
		operand := strings.TrimSpace(line[1:])
		if len(operand) == 0 {
			err = ErrAddressMissing
			return
		}
		cmd = &AddressCommand{Operand: operand}
	default:
		cmd, err = parseCompute(line)
	}

	return
}

// parseCompute splits dest=comp;jump.
func parseCompute(line string) (cmd *ComputeCommand, err error) {
	var dest, jump string

	rest := line
	if before, after, ok := strings.Cut(rest, "="); ok {
		dest = strings.TrimSpace(before)
		if len(dest) == 0 {
			err = ErrDestMissing
			return
		}
		rest = after
	}

	if before, after, ok := strings.Cut(rest, ";"); ok {
		jump = strings.TrimSpace(after)
		if len(jump) == 0 {
			err = ErrJumpMissing
			return
		}
		rest = before
	}

	comp := strings.TrimSpace(rest)
	if len(comp) == 0 {
		err = ErrCompMissing
		return
	}

	cmd = &ComputeCommand{Dest: dest, Comp: comp, Jump: jump}
	return
}
