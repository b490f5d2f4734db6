package phone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/rogpeppe/chainmap/hashmap"
)

// ErrInvalidNumber is returned (wrapped) when a phone number
// contains characters other than digits, white space and hyphens.
var ErrInvalidNumber = errors.New("invalid phone number")

// ErrInvalidName is returned (wrapped) when a name cannot be
// written as a catalog line: it is empty, starts with #, has
// white space at either end or contains a line break.
var ErrInvalidName = errors.New("invalid name")

// Hash returns the sum of the bytes of name modulo 255.
// It always lies within the initial slots of a [hashmap.Map].
func Hash(name string) int {
	sum := 0
	for i := 0; i < len(name); i++ {
		sum += int(name[i])
	}
	return sum % 255
}

// Catalog maps names to phone numbers.
//
// Adding a name that is already present shadows the earlier
// number until the later one is removed.
type Catalog struct {
	numbers *hashmap.Map[string, string]
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		numbers: hashmap.New[string, string](Hash),
	}
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return c.numbers.Len()
}

// Add adds an entry for name. The number is stored as given
// but must satisfy [IsCorrect], must not contain a line break and
// must not start or end with white space.
func (c *Catalog) Add(name, number string) error {
	if !validName(name) {
		return fmt.Errorf("cannot add %q for %q: %w", number, name, ErrInvalidName)
	}
	if !IsCorrect(number) || !validField(number) {
		return fmt.Errorf("cannot add %q for %q: %w", number, name, ErrInvalidNumber)
	}
	c.numbers.Append(name, number)
	return nil
}

// Lookup returns the number for name. The error wraps
// [hashmap.ErrKeyNotFound] if there is none.
func (c *Catalog) Lookup(name string) (string, error) {
	number, err := c.numbers.Get(name)
	if err != nil {
		return "", fmt.Errorf("cannot look up number: %w", err)
	}
	return number, nil
}

// Has reports whether there is an entry for name.
func (c *Catalog) Has(name string) bool {
	return c.numbers.HasKey(name)
}

// Remove removes the most recently added entry for name
// and reports whether there was one.
func (c *Catalog) Remove(name string) bool {
	return c.numbers.Remove(name)
}

// All returns an iterator over the (name, number) entries
// in the catalog.
func (c *Catalog) All() iter.Seq2[string, string] {
	return c.numbers.All()
}

// WriteTo writes the catalog to w as "name: number" lines,
// in the format read by Load. The entries for a name are
// written oldest first, so loading the output into an empty
// catalog gives the same result for Lookup.
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for name, number := range c.numbers.Appended() {
		n, err := fmt.Fprintf(w, "%s: %s\n", name, number)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Load reads "name: number" lines from r and adds them to
// the catalog. Blank lines and lines starting with # are
// ignored. The name is everything before the last colon.
func (c *Catalog) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.LastIndexByte(line, ':')
		if i < 0 {
			return fmt.Errorf("line %d: missing colon", lineNum)
		}
		name := strings.TrimSpace(line[:i])
		if name == "" {
			return fmt.Errorf("line %d: empty name", lineNum)
		}
		if err := c.Add(name, strings.TrimSpace(line[i+1:])); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

func validName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "#") && validField(name)
}

// validField reports whether s survives being written on a
// catalog line and read back.
func validField(s string) bool {
	return !strings.ContainsAny(s, "\r\n") && strings.TrimSpace(s) == s
}
