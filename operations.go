package lensmap

import (
	"fmt"
	"github.com/gostonefire/lensmap/internal/conf"
	"github.com/gostonefire/lensmap/internal/hash"
	"github.com/gostonefire/lensmap/internal/model"
	"github.com/gostonefire/lensmap/internal/utils"
	"strconv"
	"strings"
)

// ParseInstruction - Parses one instruction token of the form <label>- or <label>=<value>.
// The label is everything before the first '-' or '='. Anything after a '-' is ignored.
//   - token is a single instruction without any separator
//
// It returns:
//   - instruction is the parsed model.Instruction
//   - err is either of type MalformedInstruction, ParseError or nil
func ParseInstruction(token string) (instruction model.Instruction, err error) {
	opIndex := strings.IndexAny(token, string([]byte{conf.OperationRemove, conf.OperationSet}))
	if opIndex == -1 {
		err = MalformedInstruction{Token: token}
		return
	}

	instruction.Label = token[:opIndex]
	instruction.Operation = token[opIndex]

	if instruction.Operation == conf.OperationSet {
		instruction.Value, err = strconv.ParseInt(token[opIndex+1:], 10, 64)
		if err != nil {
			err = ParseError{Token: token, Label: instruction.Label, Err: err}
			instruction = model.Instruction{}
			return
		}
	}

	return
}

// ApplyInstruction - Parses one instruction token and applies it to the lens map
//   - token is a single instruction without any separator
//
// It returns:
//   - err is either of type MalformedInstruction, ParseError or a standard error
func (L *LensMap) ApplyInstruction(token string) (err error) {
	instruction, err := ParseInstruction(token)
	if err != nil {
		return
	}

	return L.Apply(instruction)
}

// Apply - Applies an already parsed instruction to the lens map
func (L *LensMap) Apply(instruction model.Instruction) (err error) {
	switch instruction.Operation {
	case conf.OperationRemove:
		err = L.Remove(instruction.Label)
	case conf.OperationSet:
		err = L.Set(instruction.Label, instruction.Value)
	default:
		err = MalformedInstruction{Token: instruction.Label + string(instruction.Operation)}
	}

	return
}

// ApplyAll - Applies every comma separated instruction on the line, strictly from left to right.
// Empty tokens are skipped. Replay stops at the first failing instruction, records already applied
// stay in the lens map.
//   - line is the full instruction line without line ending
//
// It returns:
//   - applied is the number of instructions successfully applied
//   - err wraps the failing instruction's error together with its position
func (L *LensMap) ApplyAll(line string) (applied int, err error) {
	for i, token := range utils.SplitNonEmpty(line, conf.InstructionSeparator) {
		err = L.ApplyInstruction(token)
		if err != nil {
			err = fmt.Errorf("instruction %d: %w", i+1, err)
			return
		}
		applied++
	}

	L.logger.Debug().Int("instructions", applied).Msg("replayed instructions")

	return
}

// HashSum - Returns the sum of the holiday hash of every comma separated token on the line, where each
// token is hashed in full regardless of instruction semantics. Empty tokens are skipped.
//   - line is the full instruction line without line ending
func HashSum(line string) (sum int64) {
	for _, token := range utils.SplitNonEmpty(line, conf.InstructionSeparator) {
		sum += hash.Sum(token)
	}

	return
}
