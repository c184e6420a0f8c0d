package conf

// NumberOfBoxes - Fixed number of boxes (buckets) in a lens map
const NumberOfBoxes int64 = 256

// HashMultiplier - Multiplier applied to the accumulator for every byte hashed
const HashMultiplier int64 = 17

// InstructionSeparator - Separates instruction tokens on the input line
const InstructionSeparator string = ","

// OperationRemove - Operation character for removing a lens from its box
const OperationRemove byte = '-'

// OperationSet - Operation character for setting (adding or replacing) a lens in its box
const OperationSet byte = '='

// DefaultRedCubes - Number of red cubes in the bag unless configured otherwise
const DefaultRedCubes int = 12

// DefaultGreenCubes - Number of green cubes in the bag unless configured otherwise
const DefaultGreenCubes int = 13

// DefaultBlueCubes - Number of blue cubes in the bag unless configured otherwise
const DefaultBlueCubes int = 14

// DefaultInputFile - Input file read when nothing else is configured
const DefaultInputFile string = "input"

// EnvPrefix - Prefix for all environment variables read by Load
const EnvPrefix string = "LENSMAP_"
