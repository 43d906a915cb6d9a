package pipeline

import "io"

// Transform is one step of a stage's hook chain.
type Transform func(text string) (string, error)

// Compose feeds input through transforms in order, each one consuming the
// full output of the previous. With no transforms the input is returned as is.
// The first error stops the chain and is returned unchanged.
func Compose(transforms []Transform, input string) (string, error) {
	text := input
	for _, t := range transforms {
		var err error
		text, err = t(text)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// RunStage composes the stage chain over input and writes the result to w.
// Nothing is written when the result is empty, not even the newline.
// When newline is set, a '\n' follows non-empty output.
func RunStage(w io.Writer, transforms []Transform, input string, newline bool) error {
	text, err := Compose(transforms, input)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	if newline {
		text += "\n"
	}
	_, err = io.WriteString(w, text)
	return err
}

// Pure adapts an infallible text function, such as Linkify, to a Transform.
func Pure(f func(string) string) Transform {
	return func(text string) (string, error) { return f(text), nil }
}
