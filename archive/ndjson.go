package archive

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/chandraflight/kadistate/command"
)

// LoadNDJSON reads a newline-delimited JSON command log, one
// command.Command per line, for the CLI driver's file-backed mode
// (SPEC_FULL.md §4.9 CLI). This is the only file I/O in the archive
// package; Finder itself never touches the filesystem.
func LoadNDJSON(path string) ([]command.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	defer f.Close()

	var cmds []command.Command
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var c command.Command
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("archive: parse %s: %w", path, err)
		}
		cmds = append(cmds, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("archive: scan %s: %w", path, err)
	}
	return cmds, nil
}
