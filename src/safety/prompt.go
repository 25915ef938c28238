package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options captures the execution-safety flags. The tool is dry-run
// unless Execute is set; Yes suppresses the confirmation prompt.
type Options struct {
	Execute bool
	Yes     bool
}

// Confirm prompts before a mutating run.
//   - If opts.Execute is false, it returns false with no error (dry run,
//     nothing to confirm).
//   - If opts.Yes is true, it returns true without prompting.
//
// The caller decides what to do with the result.
func Confirm(opts Options, in io.Reader, out io.Writer, question string) (bool, error) {
	if !opts.Execute {
		return false, nil
	}
	if opts.Yes {
		return true, nil
	}
	if out != nil {
		fmt.Fprintf(out, "%s [y/N]: ", strings.TrimSpace(question))
	}
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	ans := strings.TrimSpace(strings.ToLower(line))
	return ans == "y" || ans == "yes", nil
}
