package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/op/go-logging.v1"

	"github.com/b2sum/blake2/blake2b"
)

// Read buffer size, a whole number of blocks.
const readSize = 64 * blake2b.BlockSize

type summer struct {
	stdin io.Reader
	out   io.Writer
	log   *logging.Logger
	quiet bool
}

func hashReader(r io.Reader) ([]byte, error) {
	d := blake2b.NewDigest()
	buf := make([]byte, readSize)
	if _, err := io.CopyBuffer(d, r, buf); err != nil {
		return nil, err
	}
	return d.Sum(nil), nil
}

func (s *summer) open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(s.stdin), nil
	}
	return os.Open(name)
}

func (s *summer) hashFile(name string) ([]byte, error) {
	f, err := s.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sum, err := hashReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.log.Debugf("%s: %x", name, sum)
	return sum, nil
}

// sumFiles prints one "checksum  name" line per file. Unreadable files are
// reported and skipped.
func (s *summer) sumFiles(names []string) error {
	failed := 0
	for _, name := range names {
		sum, err := s.hashFile(name)
		if err != nil {
			s.log.Errorf("%v", err)
			failed++
			continue
		}
		fmt.Fprintf(s.out, "%x  %s\n", sum, name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(names))
	}
	return nil
}

// checkFiles verifies every checksum list in names.
func (s *summer) checkFiles(names []string) error {
	var st checkStats
	for _, name := range names {
		f, err := s.open(name)
		if err != nil {
			return err
		}
		err = s.checkList(f, &st)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return st.err()
}

type checkStats struct {
	malformed, unreadable, mismatched int
}

func (st *checkStats) err() error {
	var msgs []string
	if st.malformed > 0 {
		msgs = append(msgs, fmt.Sprintf("%d lines are improperly formatted", st.malformed))
	}
	if st.unreadable > 0 {
		msgs = append(msgs, fmt.Sprintf("%d listed files could not be read", st.unreadable))
	}
	if st.mismatched > 0 {
		msgs = append(msgs, fmt.Sprintf("%d computed checksums did NOT match", st.mismatched))
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}

func parseLine(line string) (want []byte, name string, ok bool) {
	sumHex, name, found := strings.Cut(line, "  ")
	if !found || name == "" {
		return nil, "", false
	}
	want, err := hex.DecodeString(sumHex)
	if err != nil || len(want) != blake2b.Size {
		return nil, "", false
	}
	return want, name, true
}

func (s *summer) checkList(r io.Reader, st *checkStats) error {
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		want, name, ok := parseLine(line)
		if !ok {
			s.log.Warningf("line %d: improperly formatted checksum line", lineNo)
			st.malformed++
			continue
		}

		got, err := s.hashFile(name)
		switch {
		case err != nil:
			s.log.Errorf("%v", err)
			fmt.Fprintf(s.out, "%s: FAILED open or read\n", name)
			st.unreadable++
		case !bytes.Equal(got, want):
			fmt.Fprintf(s.out, "%s: FAILED\n", name)
			st.mismatched++
		case !s.quiet:
			fmt.Fprintf(s.out, "%s: OK\n", name)
		}
	}
	return scanner.Err()
}
