// Package vars implements the shell's variable store: a name-to-string
// mapping plus the reserved %-prefixed names and the {NAME} substitution
// scanner described in section 4.6 of the toolkit specification.
package vars

import (
	"strconv"
	"strings"

	"github.com/nabbar/cmdshell/shellerr"
)

// Store is a single shell's variable table. It is not safe for
// concurrent use; the shell is single-threaded by design (section 5).
type Store struct {
	values map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the stored value for name and whether it exists.
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name, overwriting any previous value.
func (s *Store) Set(name, value string) {
	s.values[name] = value
}

// Unset removes name from the store, if present.
func (s *Store) Unset(name string) {
	delete(s.values, name)
}

// ArgCountName, ArgName and ResultName are the reserved variable names
// from section 3: "%N" (count), "%0".."%k-1" (positional arguments) and
// "%?" (last dispatch result).
const (
	ArgCountName = "%N"
	ResultName   = "%?"
)

// ArgName returns the reserved name for positional argument k ("%0",
// "%1", ...).
func ArgName(k int) string {
	return "%" + strconv.Itoa(k)
}

// StoreArgs writes %0..%argc-1 and %N = argc, and removes any
// previously stored %k for k >= argc, preserving the invariant in
// section 3: "if %N = k, then %0 ... %k-1 exist and %k does not."
func (s *Store) StoreArgs(argv []string) {
	if prev, ok := s.Get(ArgCountName); ok {
		if n, err := strconv.Atoi(prev); err == nil {
			for k := len(argv); k < n; k++ {
				s.Unset(ArgName(k))
			}
		}
	}

	for k, a := range argv {
		s.Set(ArgName(k), a)
	}
	s.Set(ArgCountName, strconv.Itoa(len(argv)))
}

// SetResult writes %? as the decimal representation of n.
func (s *Store) SetResult(n int64) {
	s.Set(ResultName, strconv.FormatInt(n, 10))
}

// SetResultMarker writes %? to the out-of-band error marker
// (shellerr.Marker), per section 7.
func (s *Store) SetResultMarker() {
	s.SetResult(shellerr.Marker)
}

// Substitute performs the left-to-right {NAME} scan of section 4.6: each
// {NAME} span is replaced by the stored value of NAME. Braces may nest
// lexically only in that an inner "{" may close an outer one first -
// the scan always uses the first unmatched "}" following each "{".
// Substitution is not recursive: a substituted value is never itself
// rescanned. An unknown variable aborts the whole substitution.
func (s *Store) Substitute(line string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(line) {
		c := line[i]
		if c != '{' {
			out.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(line[i+1:], '}')
		if end < 0 {
			// No closing brace: treat the rest of the line as literal,
			// matching the scanner's "first unmatched } after each {"
			// rule degrading gracefully when there is none.
			out.WriteString(line[i:])
			break
		}
		end += i + 1

		name := line[i+1 : end]
		val, ok := s.Get(name)
		if !ok {
			return "", shellerr.Newf(shellerr.UnknownVariable, "unknown variable %q", name)
		}

		out.WriteString(val)
		i = end + 1
	}

	return out.String(), nil
}
