package viewer

import "strings"

// Prompt collects a typed vertex number for one of several target objects.
// Only digits are accepted; Tab-style cycling changes the target.
type Prompt struct {
	targets []string
	target  int
	text    strings.Builder
}

// NewPrompt creates a prompt over the given target names.
func NewPrompt(targets []string) *Prompt {
	return &Prompt{targets: targets}
}

// Target returns the current target name, or "" with no targets.
func (p *Prompt) Target() string {
	if len(p.targets) == 0 {
		return ""
	}
	return p.targets[p.target]
}

// Text returns the digits typed so far.
func (p *Prompt) Text() string {
	return p.text.String()
}

// Type appends the digits of s and drops everything else.
func (p *Prompt) Type(s string) {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			p.text.WriteRune(r)
		}
	}
}

// Backspace removes the last typed digit.
func (p *Prompt) Backspace() {
	s := p.text.String()
	if s == "" {
		return
	}
	p.text.Reset()
	p.text.WriteString(s[:len(s)-1])
}

// Next switches to the following target and clears the typed text.
func (p *Prompt) Next() {
	if len(p.targets) == 0 {
		return
	}
	p.target = (p.target + 1) % len(p.targets)
	p.text.Reset()
}

// Submit returns the target and the typed text, then clears the text.
func (p *Prompt) Submit() (target, input string) {
	target, input = p.Target(), p.Text()
	p.text.Reset()
	return target, input
}

// Title renders the prompt for the window title bar.
func (p *Prompt) Title(base string) string {
	if len(p.targets) == 0 {
		return base
	}
	return base + " | " + p.Target() + " vertex: " + p.Text() + "_"
}
