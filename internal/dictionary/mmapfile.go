package dictionary

import (
	"bufio"
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// readLines memory-maps path and walks it line by line without copying the
// whole file into a second buffer first. Built-in and personal dictionary
// files can reach the tens-of-MB range at the upper end of §4.A's word
// count, so this avoids bufio.Scanner's double-buffering on top of the
// page cache the OS already maintains for the mapped region.
func readLines(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer mapped.Unmap()

	scanner := bufio.NewScanner(bytes.NewReader(mapped))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Bytes()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
