package model

// Record - Represents one lens in a box
type Record struct {
	Label string
	Value int64
}

// Instruction - Represents one parsed instruction token
//   - Label is the text before the operation character
//   - Operation is either conf.OperationRemove or conf.OperationSet
//   - Value is the parsed value for a set operation, zero for a remove
type Instruction struct {
	Label     string
	Operation byte
	Value     int64
}
