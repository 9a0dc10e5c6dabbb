package vm

import (
	"fmt"
	"io"
	"math"

	"github.com/akashmaji946/golox/value"
)

// DefaultMaxStack is the VM's default bounded value-stack capacity.
const DefaultMaxStack = 256

// VM is a stack machine over a Chunk.
type VM struct {
	ip       int
	stack    []value.Value
	maxStack int
	Tracing  bool
	Out      io.Writer
}

// New creates a VM with the default stack bound, tracing disabled, and
// output discarded unless Out is set.
func New() *VM {
	return &VM{maxStack: DefaultMaxStack, Out: io.Discard}
}

// NewWithMaxStack creates a VM with an explicit stack bound, for tests
// exercising the stack-bound property.
func NewWithMaxStack(max int) *VM {
	return &VM{maxStack: max, Out: io.Discard}
}

func (m *VM) push(v value.Value) error {
	if len(m.stack) >= m.maxStack {
		return &RuntimeError{Kind: StackOverflow, Max: m.maxStack}
	}
	m.stack = append(m.stack, v)
	return nil
}

func (m *VM) pop() (value.Value, error) {
	if len(m.stack) == 0 {
		return nil, &RuntimeError{Kind: StackUnderflow}
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// Run executes chunk to completion, returning the value emitted by
// RETURN, or the first RuntimeError encountered.
func (m *VM) Run(chunk *Chunk) (value.Value, error) {
	m.ip = 0
	for {
		if m.Tracing {
			m.traceStep(chunk)
		}
		opByte, err := chunk.GetByte(m.ip)
		if err != nil {
			return nil, err
		}
		op := OpCode(opByte)

		switch op {
		case OpConstant:
			idxByte, err := chunk.GetByte(m.ip + 1)
			if err != nil {
				return nil, err
			}
			c, err := chunk.GetConstant(idxByte)
			if err != nil {
				return nil, err
			}
			if err := m.push(c); err != nil {
				return nil, err
			}
			m.ip += 2

		case OpReturn:
			v, err := m.pop()
			if err != nil {
				return nil, err
			}
			return v, nil

		case OpNegate:
			v, err := m.pop()
			if err != nil {
				return nil, err
			}
			n, ok := v.(value.Number)
			if !ok {
				return nil, &RuntimeError{Kind: ArithmeticTypeError, Detail: "NEGATE requires a number operand"}
			}
			if err := m.push(-n); err != nil {
				return nil, err
			}
			m.ip++

		case OpAdd, OpSubtract, OpMultiply, OpDivide:
			b, err := m.pop()
			if err != nil {
				return nil, err
			}
			a, err := m.pop()
			if err != nil {
				return nil, err
			}
			an, aok := a.(value.Number)
			bn, bok := b.(value.Number)
			if !aok || !bok {
				return nil, &RuntimeError{Kind: ArithmeticTypeError, Detail: fmt.Sprintf("%s requires two number operands", op)}
			}
			var result value.Number
			switch op {
			case OpAdd:
				result = an + bn
			case OpSubtract:
				result = an - bn
			case OpMultiply:
				result = an * bn
			case OpDivide:
				if bn == 0 || math.IsNaN(float64(bn)) {
					return nil, &RuntimeError{Kind: ArithmeticTypeError, Detail: "DIVIDE by zero or NaN"}
				}
				result = an / bn
			}
			if err := m.push(result); err != nil {
				return nil, err
			}
			m.ip++

		default:
			return nil, &RuntimeError{Kind: InvalidInstruction, Opcode: opByte}
		}
	}
}

func (m *VM) traceStep(chunk *Chunk) {
	fmt.Fprintf(m.Out, "          stack: %v\n", m.stack)
	text, _ := DisassembleInstruction(chunk, m.ip)
	fmt.Fprintln(m.Out, text)
}
