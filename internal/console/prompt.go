package console

import (
	"fmt"
	"strconv"
	"strings"
)

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "[ERROR] "+format+"\n", args...)
}

func (c *Console) successf(format string, args ...any) {
	fmt.Fprintf(c.out, "[SUCCESS] "+format+"\n", args...)
}

func (c *Console) banner(title string, width int) {
	line := strings.Repeat("=", width)
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	c.printf("\n%s\n%s%s\n%s\n", line, strings.Repeat(" ", pad), title, line)
}

// readLine prompts and returns the trimmed input line. ok is false when
// input has ended.
func (c *Console) readLine(prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readInt prompts for an integer; malformed input is an error the
// caller reports, never a retry loop here.
func (c *Console) readInt(prompt string) (int, error) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, fmt.Errorf("input closed")
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return n, nil
}

// readIntDefault prompts for an integer, falling back to def on blank
// or malformed input.
func (c *Console) readIntDefault(prompt string, def int) int {
	line, ok := c.readLine(prompt)
	if !ok || line == "" {
		return def
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return def
	}
	return n
}

// readLineDefault prompts for a line, falling back to def on blank
// input.
func (c *Console) readLineDefault(prompt, def string) string {
	line, ok := c.readLine(prompt)
	if !ok || line == "" {
		return def
	}
	return line
}
