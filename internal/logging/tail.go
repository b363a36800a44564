package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Tail returns the last n lines of the log at path, oldest first. A missing
// file has no lines. The ring grows with the lines read, so a large n costs
// no more than the file itself.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	var ring []string
	seen := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) < n {
			ring = append(ring, scanner.Text())
		} else {
			ring[seen%n] = scanner.Text()
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if seen <= n {
		return ring, nil
	}
	start := seen % n
	return append(ring[start:], ring[:start]...), nil
}
