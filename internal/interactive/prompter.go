// Package interactive implements the Asker contract on top of survey,
// reading answers from the terminal.
package interactive

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter collects interactive user input
type Prompter struct{}

// NewPrompter creates a new interactive prompter
func NewPrompter() *Prompter {
	return &Prompter{}
}

// AskValue asks for a free-form value and returns the trimmed answer. An
// empty answer comes back as-is; applying a default is the caller's policy.
func (p *Prompter) AskValue(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// Confirm asks a destructive-action confirmation. Only the literal answer
// "y", compared case-insensitively, accepts; anything else, including an
// empty answer, declines.
func (p *Prompter) Confirm(message string) (bool, error) {
	answer, err := p.AskValue(message)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
