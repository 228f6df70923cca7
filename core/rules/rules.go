package rules

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps a (vendor, command) pair to a template and a handler.
type Rule struct {
	// Template is the template file name.
	Template string `yaml:"template" json:"template"`
	// Vendor is a regular expression matched against the device vendor.
	Vendor string `yaml:"vendor" json:"vendor"`
	// Command is a regular expression matched against the submitted command.
	// It may use the [[...]] completion syntax.
	Command string `yaml:"command" json:"command"`
	// Handler is the reconciler identifier.
	Handler string `yaml:"handler" json:"handler"`
	// Description is shown in the command listing.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	vendorRe  *regexp.Regexp
	commandRe *regexp.Regexp
}

// Matches reports whether both patterns match at the start of vendor and command.
func (r Rule) Matches(vendor, command string) bool {
	return r.vendorRe.MatchString(vendor) && r.commandRe.MatchString(command)
}

// Index is an ordered, immutable rule table.
type Index struct {
	rules []Rule
}

// ErrMissingColumn is returned when the index header lacks a required column.
var ErrMissingColumn = errors.New("missing index column")

var completionRe = regexp.MustCompile(`\[\[(.+?)\]\]`)

// Expand rewrites the completion syntax: "sh[[ow]]" becomes "sh(o(w)?)?".
func Expand(pattern string) string {
	return completionRe.ReplaceAllStringFunc(pattern, func(m string) string {
		inner := m[2 : len(m)-2]
		var b strings.Builder
		for _, r := range inner {
			b.WriteString("(")
			b.WriteRune(r)
		}
		b.WriteString(strings.Repeat(")?", len([]rune(inner))))
		return b.String()
	})
}

// compile anchors the pattern at the start only.
func compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)`)
}

// New builds an index from rules in table order.
func New(rules []Rule) (*Index, error) {
	idx := &Index{rules: make([]Rule, 0, len(rules))}
	for i, r := range rules {
		r.Template = strings.TrimSpace(r.Template)
		r.Handler = strings.TrimSpace(r.Handler)
		if r.Template == "" || r.Handler == "" {
			return nil, fmt.Errorf("rule %d: template and handler are required", i+1)
		}

		var err error
		if r.vendorRe, err = compile(r.Vendor); err != nil {
			return nil, fmt.Errorf("rule %d: invalid vendor pattern %q: %w", i+1, r.Vendor, err)
		}
		if r.commandRe, err = compile(Expand(r.Command)); err != nil {
			return nil, fmt.Errorf("rule %d: invalid command pattern %q: %w", i+1, r.Command, err)
		}
		idx.rules = append(idx.rules, r)
	}
	return idx, nil
}

// Load reads a clitable style index: '#' comments, a header row naming the
// Template, Vendor (or Platform), Command and Function (or Handler) columns,
// then one rule per row.
func Load(r io.Reader) (*Index, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty index: %w", ErrMissingColumn)
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	column := func(names ...string) (int, error) {
		for _, n := range names {
			if i, ok := cols[n]; ok {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, names[0])
	}

	tplCol, err := column("template")
	if err != nil {
		return nil, err
	}
	vendorCol, err := column("vendor", "platform")
	if err != nil {
		return nil, err
	}
	cmdCol, err := column("command")
	if err != nil {
		return nil, err
	}
	handlerCol, err := column("function", "handler")
	if err != nil {
		return nil, err
	}
	descCol, descErr := column("description")

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var rules []Rule
	for _, row := range rows[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		rule := Rule{
			Template: cell(row, tplCol),
			Vendor:   cell(row, vendorCol),
			Command:  cell(row, cmdCol),
			Handler:  cell(row, handlerCol),
		}
		if descErr == nil {
			rule.Description = cell(row, descCol)
		}
		rules = append(rules, rule)
	}
	return New(rules)
}

// LoadYAML reads a YAML document holding a "rules" list.
func LoadYAML(r io.Reader) (*Index, error) {
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}
	return New(doc.Rules)
}

// LoadFile loads an index file, picking the format by extension.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer f.Close()

	return LoadBytes(path, f)
}

// LoadBytes loads an index named name from r, picking the format by extension.
func LoadBytes(name string, r io.Reader) (*Index, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return LoadYAML(r)
	default:
		return Load(r)
	}
}

// Match returns the first rule, in table order, matching vendor and command.
func (idx *Index) Match(vendor, command string) (Rule, bool) {
	for _, r := range idx.rules {
		if r.Matches(vendor, command) {
			return r, true
		}
	}
	return Rule{}, false
}

// MatchCommand returns the first rule matching command for any vendor.
func (idx *Index) MatchCommand(command string) (Rule, bool) {
	for _, r := range idx.rules {
		if r.commandRe.MatchString(command) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns a copy of the ordered table.
func (idx *Index) Rules() []Rule {
	out := make([]Rule, len(idx.rules))
	copy(out, idx.rules)
	return out
}

// Commands describes every command pattern, keyed by the pattern as written.
func (idx *Index) Commands() map[string]string {
	out := make(map[string]string, len(idx.rules))
	for _, r := range idx.rules {
		desc := r.Description
		if desc == "" {
			desc = fmt.Sprintf("vendor %s, handler %s", r.Vendor, r.Handler)
		}
		if prev, ok := out[r.Command]; ok && prev != desc {
			desc = prev + "; " + desc
		}
		out[r.Command] = desc
	}
	return out
}
