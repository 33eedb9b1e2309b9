package task

import (
	"fmt"
	"strings"
)

// Operation identifies which pipeline a request runs.
type Operation string

// Method selects the summarization strategy sent to the model.
type Method string

// Length bounds the size of a generated summary.
type Length string

const (
	OperationSummarize  Operation = "summarize"
	OperationParaphrase Operation = "paraphrase"
)

const (
	MethodAbstractive Method = "abstractive"
	MethodExtractive  Method = "extractive"
)

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// The web UI pickers start on abstractive/medium, so empty method and
// length inputs resolve to these.
const (
	DefaultMethod = MethodAbstractive
	DefaultLength = LengthMedium
)

// Valid reports whether op names a known operation.
func (op Operation) Valid() bool {
	return op == OperationSummarize || op == OperationParaphrase
}

// ParseOperation normalizes raw client input into an Operation.
func ParseOperation(raw string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(raw)))
	if !op.Valid() {
		return "", fmt.Errorf("unknown task %q", raw)
	}
	return op, nil
}

// ParseMethod normalizes raw client input into a Method. Empty input
// resolves to the abstractive default.
func ParseMethod(raw string) (Method, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return DefaultMethod, nil
	}
	switch m := Method(trimmed); m {
	case MethodAbstractive, MethodExtractive:
		return m, nil
	default:
		return "", fmt.Errorf("unknown method %q", raw)
	}
}

// ParseLength normalizes raw client input into a Length. Empty input
// resolves to the medium default.
func ParseLength(raw string) (Length, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return DefaultLength, nil
	}
	switch l := Length(trimmed); l {
	case LengthShort, LengthMedium, LengthLong:
		return l, nil
	default:
		return "", fmt.Errorf("unknown length %q", raw)
	}
}
