package layer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"homolo/domain/table"
)

// DefaultPersonnelParent is the layer code the personnel hierarchy hangs
// under when the caller does not pick one.
const DefaultPersonnelParent = "20"

var nonAlnum = regexp.MustCompile(`[^0-9A-Za-z]`)

// roleRecord is a role row with its derived join keys.
type roleRecord struct {
	code    string
	name    string
	roleKey string // lowercased trimmed role name
	codeKey string // code with non-alphanumerics stripped
}

// employeeRecord is an employee row with its derived join keys.
type employeeRecord struct {
	id      string
	name    string
	cost    string
	roleKey string
	codeKey string // from the cargo column; empty when absent
}

// BuildPersonnel produces the three-level hierarchy layer parent -> role ->
// employee. Roles are sorted by code (numeric codes numerically and before
// non-numeric ones, non-numeric codes lexically among themselves).
//
// The join strategy is chosen once per call: if any employee carries a role
// code (cargo), matching is code-based for every role; otherwise it is
// name-based. An employee without the chosen key silently matches nothing,
// and employees matching no role are dropped from the output.
func BuildPersonnel(roles, employees *table.Table, parentCode string) []Row {
	rs := make([]roleRecord, 0, roles.Len())
	for _, r := range roles.Rows {
		code := strings.TrimSpace(r.Get("code"))
		name := strings.TrimSpace(r.Get("role"))
		rs = append(rs, roleRecord{
			code:    code,
			name:    name,
			roleKey: strings.ToLower(name),
			codeKey: nonAlnum.ReplaceAllString(code, ""),
		})
	}

	es := make([]employeeRecord, 0, employees.Len())
	useCode := false
	for _, e := range employees.Rows {
		rec := employeeRecord{
			id:      strings.TrimSpace(e.Get("id")),
			name:    strings.TrimSpace(e.Get("name")),
			cost:    e.Get("cost"),
			roleKey: strings.ToLower(strings.TrimSpace(e.Get("role"))),
			codeKey: nonAlnum.ReplaceAllString(strings.TrimSpace(e.Get("cargo")), ""),
		}
		if rec.codeKey != "" {
			useCode = true
		}
		es = append(es, rec)
	}

	sort.SliceStable(rs, func(i, j int) bool {
		return codeLess(rs[i].code, rs[j].code)
	})

	out := make([]Row, 0, len(rs)+len(es))
	for _, role := range rs {
		roleSymbol := parentCode + "." + role.code
		out = append(out, Row{
			Parent: parentCode,
			Symbol: roleSymbol,
			Name:   role.name,
		})
		for _, e := range es {
			if useCode {
				if e.codeKey != role.codeKey {
					continue
				}
			} else if e.roleKey != role.roleKey {
				continue
			}
			out = append(out, Row{
				Parent:    roleSymbol,
				Symbol:    roleSymbol + "." + e.id,
				Name:      e.name,
				InputCost: e.cost,
			})
		}
	}
	return out
}

// codeLess orders role codes: numeric before non-numeric, numerics compared
// as integers, non-numerics as raw strings.
func codeLess(a, b string) bool {
	ai, aok := parseDigits(a)
	bi, bok := parseDigits(b)
	switch {
	case aok && bok:
		return ai < bi
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

func parseDigits(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
