package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does NOT run the editor itself — callers use tea.Exec with the returned
// *exec.Cmd so Bubble Tea properly suspends raw terminal mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!-- 
rantthread: Write your reply below.

- SAVE and EXIT to send (e.g., :wq in vi).
- Emptying the file or making NO CHANGES will cancel.
- Quoted lines starting with ">" are kept as written.
-->

`

// Cmd prepares an *exec.Cmd for the editor and a temp file path. The temp
// file holds the instruction comment, a "Replying to" header for authorLabel
// and the quoted content.
func (e *EnvEditor) Cmd(quoted, authorLabel string) (*exec.Cmd, string, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "rantthread-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(instructionComment + Template(quoted, authorLabel)); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	cmd := exec.Command(editorCmd, "+", tmpPath)
	return cmd, tmpPath, nil
}

// Template is the pre-filled body of a reply: a header naming the author and
// the quoted content. It is also what an untouched buffer reads back as.
func Template(quoted, authorLabel string) string {
	var b strings.Builder
	if authorLabel != "" {
		b.WriteString("Replying to " + authorLabel + "\n")
	}
	for _, line := range strings.Split(strings.TrimSpace(quoted), "\n") {
		if line == "" && quoted == "" {
			continue
		}
		b.WriteString("> " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// ReadContent reads the temp file, trims whitespace, and removes the file.
// It strips the instruction comment before returning.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if idx := strings.Index(content, "-->"); idx != -1 {
		content = content[idx+3:]
	}
	return strings.TrimSpace(content), nil
}

// StripTemplate removes the "Replying to" header from a composed reply. A
// reply that is only the untouched template comes back empty.
func StripTemplate(content, authorLabel string) string {
	content = strings.TrimSpace(content)
	if authorLabel != "" {
		content = strings.TrimPrefix(content, "Replying to "+authorLabel)
	}
	body := strings.TrimSpace(content)
	onlyQuote := true
	for _, line := range strings.Split(body, "\n") {
		if line != "" && !strings.HasPrefix(line, ">") {
			onlyQuote = false
			break
		}
	}
	if onlyQuote {
		return ""
	}
	return body
}
