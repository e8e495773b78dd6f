package interfaces

// Asker abstracts interactive terminal input so the dispatcher's state
// machine can be driven by a deterministic double in tests
type Asker interface {
	// AskValue prompts for a free-text value and returns the trimmed answer
	AskValue(message string) (string, error)

	// Confirm prompts with message and returns true only for the exact
	// answer "y", case-insensitive; anything else declines
	Confirm(message string) (bool, error)
}
