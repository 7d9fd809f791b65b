package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nabbar/cmdshell/console"
	"github.com/nabbar/cmdshell/shellerr"
)

// Register inserts cmd into parent.children. It fails if a sibling
// already carries cmd.Keyword (property P3).
func Register(parent, cmd *Command) bool {
	if parent == nil || cmd == nil || cmd.Keyword == "" {
		return false
	}
	if parent.index == nil {
		parent.index = make(map[string]int)
	}
	if _, exists := parent.index[cmd.Keyword]; exists {
		return false
	}

	cmd.parent = parent
	parent.index[cmd.Keyword] = len(parent.children)
	parent.children = append(parent.children, cmd)
	return true
}

// Unregister removes cmd from its parent, failing if cmd is not
// Mutable. Any aliases registered against cmd are removed in the same
// operation, recursively.
func Unregister(cmd *Command) bool {
	if cmd == nil || cmd.parent == nil {
		return false
	}
	if !cmd.IsMutable() {
		return false
	}

	removeChild(cmd.parent, cmd)

	for _, alias := range cmd.aliases {
		alias.aliasedFrom = nil
		Unregister(alias)
	}
	cmd.aliases = nil

	if cmd.aliasedFrom != nil {
		detachAlias(cmd.aliasedFrom, cmd)
		cmd.aliasedFrom = nil
	}

	return true
}

func removeChild(parent, cmd *Command) {
	idx, ok := parent.index[cmd.Keyword]
	if !ok {
		return
	}

	parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	delete(parent.index, cmd.Keyword)
	cmd.parent = nil

	for kw, i := range parent.index {
		if i > idx {
			parent.index[kw] = i - 1
		}
	}
}

func detachAlias(original, alias *Command) {
	for i, a := range original.aliases {
		if a == alias {
			original.aliases = append(original.aliases[:i], original.aliases[i+1:]...)
			return
		}
	}
}

// Find returns the direct child of parent keyed by keyword, exactly.
func Find(parent *Command, keyword string) *Command {
	if parent == nil {
		return nil
	}
	if idx, ok := parent.index[keyword]; ok {
		return parent.children[idx]
	}
	return nil
}

// PartialMatches returns, in registration order, every direct child of
// parent whose keyword has prefix as a prefix, and the length of the
// longest keyword among them (section 4.1).
func PartialMatches(parent *Command, prefix string) ([]string, int) {
	if parent == nil {
		return nil, 0
	}

	var matches []string
	longest := 0
	for _, c := range parent.children {
		if strings.HasPrefix(c.Keyword, prefix) {
			matches = append(matches, c.Keyword)
			if len(c.Keyword) > longest {
				longest = len(c.Keyword)
			}
		}
	}
	return matches, longest
}

// Longest returns the maximum rendered width of "keyword arghints"
// among parent's children, used by Help for column alignment.
func Longest(parent *Command) int {
	if parent == nil {
		return 0
	}

	max := 0
	for _, c := range parent.children {
		w := len(renderedHeading(c))
		if w > max {
			max = w
		}
	}
	return max
}

func renderedHeading(c *Command) string {
	if c.ArgHints == "" {
		return c.Keyword
	}
	return c.Keyword + " " + c.ArgHints
}

// Help writes a left-aligned listing of parent's children to out,
// indented by indent spaces and column-aligned to width (section 4.1).
func Help(parent *Command, out io.Writer, indent, width int) error {
	if parent == nil {
		return nil
	}

	pad := strings.Repeat(" ", indent)
	for _, c := range parent.children {
		heading := console.PadRight(renderedHeading(c), width, " ")
		if _, err := fmt.Fprintf(out, "%s%s  %s\n", pad, heading, c.Description); err != nil {
			return err
		}
		if len(c.children) > 0 {
			if err := Help(c, out, indent+2, Longest(c)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Alias registers a new Command under target's parent that shares
// target's Handler and ArgHints under newKeyword. Aliases are always
// Mutable (section 4.1).
func Alias(target *Command, newKeyword string) (*Command, error) {
	if target == nil || target.parent == nil {
		return nil, shellerr.New(shellerr.RegistryConflict, "cannot alias a detached command")
	}

	alias := New(newKeyword, target.ArgHints, target.Description, target.Attrs|Mutable, target.Handler)
	alias.aliasedFrom = target

	if !Register(target.parent, alias) {
		return nil, shellerr.Newf(shellerr.RegistryConflict, "keyword %q already registered", newKeyword)
	}

	target.aliases = append(target.aliases, alias)
	return alias, nil
}

// SortedKeywords is a small helper for callers that want deterministic
// iteration independent of registration order (e.g. diagnostics); the
// registry itself always preserves registration order for completion
// and help, per section 4.1's tie-break rule.
func SortedKeywords(parent *Command) []string {
	out := make([]string, 0, len(parent.children))
	for _, c := range parent.children {
		out = append(out, c.Keyword)
	}
	sort.Strings(out)
	return out
}
