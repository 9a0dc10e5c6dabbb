package vm

import (
	"fmt"
	"strings"
)

const instructionPadding = 10

// DisassembleChunk produces a human-readable listing, one instruction per
// line, for the entire chunk.
func DisassembleChunk(chunk *Chunk, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)
	offset := 0
	for offset < len(chunk.Code) {
		line, next := DisassembleInstruction(chunk, offset)
		b.WriteString(line)
		b.WriteByte('\n')
		offset = next
	}
	return b.String()
}

// DisassembleInstruction renders the instruction at offset as
// "{offset:04} {mnemonic padded} [idx : constant]" and returns that text
// plus the offset of the next instruction.
func DisassembleInstruction(chunk *Chunk, offset int) (string, int) {
	opByte, err := chunk.GetByte(offset)
	if err != nil {
		return fmt.Sprintf("%04d %s", offset, err), offset + 1
	}
	op := OpCode(opByte)
	mnemonic := op.String()

	if op == OpConstant {
		idxByte, err := chunk.GetByte(offset + 1)
		if err != nil {
			return fmt.Sprintf("%04d %-*s <truncated>", offset, instructionPadding, mnemonic), offset + 1
		}
		constVal, cerr := chunk.GetConstant(idxByte)
		display := "?"
		if cerr == nil {
			display = constVal.String()
		}
		line := fmt.Sprintf("%04d %-*s %03d : %s", offset, instructionPadding, mnemonic, idxByte, display)
		return line, offset + instructionLength(op)
	}

	line := fmt.Sprintf("%04d %-*s", offset, instructionPadding, mnemonic)
	return line, offset + instructionLength(op)
}
