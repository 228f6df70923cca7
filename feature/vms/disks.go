package vms

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"netcollector/core/store/models"

	"github.com/spf13/cast"
)

// Fragment is one partial disk descriptor: an index plus a name, size or path.
type Fragment map[string]string

// Index returns the correlation key of the fragment.
func (f Fragment) Index() (string, bool) {
	for _, k := range []string{"index", "disk_index"} {
		if v, ok := f[k]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

var pythonKeywords = map[string]string{"None": "null", "True": "true", "False": "false"}

// pythonToJSON rewrites a Python dict literal into JSON. Quotes and keywords
// are only rewritten outside string literals.
func pythonToJSON(s string) string {
	var (
		b     strings.Builder
		quote rune
		rs    = []rune(s)
	)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case quote != 0 && c == '\\' && i+1 < len(rs):
			i++
			if rs[i] == '\'' {
				b.WriteRune('\'')
			} else {
				b.WriteRune('\\')
				b.WriteRune(rs[i])
			}
		case quote != 0 && c == quote:
			quote = 0
			b.WriteRune('"')
		case quote != 0 && c == '"':
			b.WriteString(`\"`)
		case quote != 0:
			b.WriteRune(c)
		case c == '\'' || c == '"':
			quote = c
			b.WriteRune('"')
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			word := string(rs[i:j])
			if kw, ok := pythonKeywords[word]; ok {
				word = kw
			}
			b.WriteString(word)
			i = j - 1
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ParseFragment decodes a fragment given as a map, a JSON object or a Python
// dict literal.
func ParseFragment(entry any) (Fragment, error) {
	switch t := entry.(type) {
	case map[string]string:
		return lowerKeys(t), nil
	case map[string]any:
		return lowerKeys(cast.ToStringMapString(t)), nil
	case string:
		s := strings.TrimSpace(t)
		var raw map[string]any
		if err := json.Unmarshal([]byte(s), &raw); err != nil {
			if err := json.Unmarshal([]byte(pythonToJSON(s)), &raw); err != nil {
				return nil, fmt.Errorf("invalid disk fragment %q", s)
			}
		}
		out := make(map[string]string, len(raw))
		for k, v := range raw {
			switch n := v.(type) {
			case float64:
				// JSON numbers decode as float64; keep integers exact.
				out[k] = cast.ToString(int64(n))
				if float64(int64(n)) != n {
					out[k] = cast.ToString(n)
				}
			default:
				out[k] = cast.ToString(v)
			}
		}
		return lowerKeys(out), nil
	}
	return nil, fmt.Errorf("unsupported disk fragment %T", entry)
}

func lowerKeys(m map[string]string) Fragment {
	out := make(Fragment, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

// MergeDisks groups name, size and path fragments by disk index into disks,
// ordered by first appearance of each index. Unusable fragments are reported
// and skipped.
func MergeDisks(names, sizes, paths []any) ([]models.Disk, []error) {
	var (
		order []string
		byIdx = map[string]*models.Disk{}
		errs  []error
	)

	get := func(idx string) *models.Disk {
		if d, ok := byIdx[idx]; ok {
			return d
		}
		d := &models.Disk{Index: idx}
		byIdx[idx] = d
		order = append(order, idx)
		return d
	}

	apply := func(entries []any, field string) {
		for _, e := range entries {
			frag, err := ParseFragment(e)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			idx, ok := frag.Index()
			if !ok {
				errs = append(errs, fmt.Errorf("disk fragment without index: %v", map[string]string(frag)))
				continue
			}
			d := get(idx)
			switch field {
			case "name":
				d.Name = frag["name"]
			case "path":
				d.Path = frag["path"]
			case "size":
				size, err := cast.ToFloat64E(frag["size"])
				if err != nil {
					errs = append(errs, fmt.Errorf("invalid size for disk %s: %q", idx, frag["size"]))
					continue
				}
				d.SizeBytes = int64(size)
			}
		}
	}

	apply(names, "name")
	apply(sizes, "size")
	apply(paths, "path")

	disks := make([]models.Disk, 0, len(order))
	for _, idx := range order {
		disks = append(disks, *byIdx[idx])
	}
	return disks, errs
}

// TotalGB sums the un-truncated per-disk sizes and truncates once.
func TotalGB(disks []models.Disk) int {
	var total float64
	for _, d := range disks {
		total += d.SizeGB()
	}
	return int(total)
}
