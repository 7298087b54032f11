package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kevmo314/fint8/pkg/block"
	"github.com/kevmo314/fint8/pkg/fint8"
)

// selfTest checks every reference vector and returns the number of
// failures.
func selfTest(w io.Writer) int {
	failures := 0
	for _, v := range fint8.Vectors {
		if err := v.Check(); err != nil {
			failures++
			fmt.Fprintf(w, "failure: %v\n", err)
		}
	}
	suffix := "s"
	if failures == 1 {
		suffix = ""
	}
	fmt.Fprintf(w, "selftest: %d steps: %d failure%s\n", len(fint8.Vectors), failures, suffix)
	return failures
}

// printTable writes the decoded value of every code, one row per shift.
func printTable(w io.Writer) {
	table := fint8.Table()
	for shift := 0; shift < 16; shift++ {
		fmt.Fprintf(w, "shift:%-2d", shift)
		for mantissa := 0; mantissa < 16; mantissa++ {
			fmt.Fprintf(w, " %6d", table[shift<<4|mantissa])
		}
		fmt.Fprintln(w)
	}
}

// describe formats v the same way Vectors is written.
func describe(v uint64) string {
	f, exact := fint8.Encode(v)
	return fmt.Sprintf("{%d, 0x%02x, %d, %t},", v, uint8(f), fint8.Decode(f), exact)
}

// repl reads whitespace separated tokens until "quit" or end of input.
func repl(in io.Reader, out io.Writer) error {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)
	for {
		fmt.Fprint(out, "? ")
		if !s.Scan() {
			break
		}
		switch tok := s.Text(); tok {
		case "quit":
			fmt.Fprintln(out, "bye!")
			return nil
		case "table":
			printTable(out)
		case "selftest":
			selfTest(out)
		default:
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				fmt.Fprintf(out, "invalid value %q\n", tok)
				continue
			}
			fmt.Fprintln(out, describe(v))
		}
	}
	fmt.Fprintln(out, "bye!")
	return s.Err()
}

func readValues(r io.Reader) ([]uint64, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	values := []uint64{}
	for s.Scan() {
		v, err := strconv.ParseUint(s.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	return values, s.Err()
}

// pack compresses the integers in path into a block written to
// path + ".fint8".
func pack(path string, blockLogger *slog.Logger, logger *zap.SugaredLogger) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	values, err := readValues(in)
	if err := multierr.Append(err, in.Close()); err != nil {
		return err
	}

	b := block.New(blockLogger)
	for _, v := range values {
		b.Append(v)
	}

	out, err := os.Create(path + ".fint8")
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	bufout := bufio.NewWriter(out)
	if err := b.Serialize(bufout); err != nil {
		return err
	}
	if err := bufout.Flush(); err != nil {
		return err
	}

	logger.Infow("packed block",
		"path", path+".fint8",
		"samples", b.Len(),
		"saturated", b.Saturated,
		"bytes", b.Size())
	return nil
}

// unpack prints the decoded readings of the block at path, one per line.
func unpack(path string, w io.Writer, blockLogger *slog.Logger) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, in.Close())
	}()

	b, err := block.ReadBlock(bufio.NewReader(in), blockLogger)
	if err != nil {
		return err
	}
	for _, v := range b.Values() {
		fmt.Fprintln(w, v)
	}
	return nil
}
