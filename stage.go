package txt2html

import "fmt"

// Stage names a point in document assembly where hook output is inserted.
type Stage string

// Assembly stages, in the order they are emitted.
const (
	StageTitle      Stage = "title"       // transforms the encoded title inside <title>
	StageAfterTitle Stage = "after_title" // runs on empty input after </title>
	StageBeforePre  Stage = "before_pre"  // runs on empty input before <pre>
	StagePre        Stage = "pre"         // transforms the encoded body inside <pre>
	StageAfterPre   Stage = "after_pre"   // runs on empty input after </pre>
)

// stageOrder is the fixed assembly order.
var stageOrder = []Stage{StageTitle, StageAfterTitle, StageBeforePre, StagePre, StageAfterPre}

// Stages returns all stages in assembly order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Valid reports whether s is one of the five known stages.
func (s Stage) Valid() bool {
	switch s {
	case StageTitle, StageAfterTitle, StageBeforePre, StagePre, StageAfterPre:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// ParseStage converts a stage name to a Stage.
// Returns ErrUnknownStage for anything but the five known names.
func ParseStage(name string) (Stage, error) {
	s := Stage(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q (valid: title, after_title, before_pre, pre, after_pre)", ErrUnknownStage, name)
	}
	return s, nil
}
