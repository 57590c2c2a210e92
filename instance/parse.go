package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line; large instances list thousands of
// items on one set line.
const maxLineBytes = 16 << 20

// maxPreallocSets caps the capacity taken from the declared set_count; the
// slice grows past it only as set lines actually arrive.
const maxPreallocSets = 1 << 16

// Parse reads an instance in the text format described in the package doc
// and validates it. Blank lines are skipped; tokens are whitespace separated.
// Lines after the declared set_count are ignored.
//
// Errors: ErrMalformedInput (with 1-based line numbers) for tokenization
// problems, or any Validate sentinel.
//
// Complexity: O(input size).
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		lineNo    int
		header    []string
		itemCount int
		setCount  int
		err       error
	)

	// Header: first non-blank line.
	for header == nil && sc.Scan() {
		lineNo++
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			header = f
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: read: %v: %w", err, ErrMalformedInput)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("Parse: line %d: want \"<item_count> <set_count>\": %w", lineNo, ErrMalformedInput)
	}
	if itemCount, err = strconv.Atoi(header[0]); err != nil {
		return nil, fmt.Errorf("Parse: line %d: item_count %q: %w", lineNo, header[0], ErrMalformedInput)
	}
	if setCount, err = strconv.Atoi(header[1]); err != nil || setCount < 0 {
		return nil, fmt.Errorf("Parse: line %d: set_count %q: %w", lineNo, header[1], ErrMalformedInput)
	}

	in := &Instance{ItemCount: itemCount, Sets: make([]Set, 0, min(setCount, maxPreallocSets))}
	for len(in.Sets) < setCount && sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		s, perr := parseSetLine(len(in.Sets), fields)
		if perr != nil {
			return nil, fmt.Errorf("Parse: line %d: %w", lineNo, perr)
		}
		in.Sets = append(in.Sets, s)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: read: %v: %w", err, ErrMalformedInput)
	}
	if len(in.Sets) != setCount {
		return nil, fmt.Errorf("Parse: declared %d sets, found %d: %w", setCount, len(in.Sets), ErrMalformedInput)
	}

	if err = Validate(in); err != nil {
		return nil, err
	}

	return in, nil
}

// parseSetLine turns "<cost> <item>..." into a Set with the given index.
func parseSetLine(index int, fields []string) (Set, error) {
	cost, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Set{}, fmt.Errorf("set %d cost %q: %w", index, fields[0], ErrMalformedInput)
	}
	items := make([]int, 0, len(fields)-1)
	for _, tok := range fields[1:] {
		v, aerr := strconv.Atoi(tok)
		if aerr != nil {
			return Set{}, fmt.Errorf("set %d item %q: %w", index, tok, ErrMalformedInput)
		}
		items = append(items, v)
	}

	return Set{Index: index, Cost: cost, Items: items}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Instance, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile opens path and parses it.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Write renders in back into the text format. Parse(Write(in)) reproduces in.
//
// Complexity: O(set_count + total items).
func Write(w io.Writer, in *Instance) error {
	if in == nil {
		return ErrNilInstance
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", in.ItemCount, len(in.Sets))
	for k := range in.Sets {
		bw.WriteString(formatCost(in.Sets[k].Cost))
		for _, item := range in.Sets[k].Items {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(item))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
