package pagination

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// trusted is deliberately unexported: outside this package only untyped
// string constants convert to it implicitly, so a value read from a request
// can never be passed to Where.
type trusted string

// Fragment is a developer-authored SQL predicate with an optional trailing
// ORDER BY clause. Placeholders are written as '?'.
type Fragment struct {
	predicate    string
	orderBy      string
	placeholders int
}

var orderByPattern = regexp.MustCompile(`(?i)\border\s+by\b`)

// Where builds a Fragment from a constant SQL snippet such as
//
//	pagination.Where("LOWER(name) LIKE ? ORDER BY name ASC")
//
// It panics if the ORDER BY clause contains placeholders, because the
// clause is dropped from the count query while its binds would not be.
func Where(fragment trusted) Fragment {
	predicate, orderBy := splitOrderBy(string(fragment))

	if countPlaceholders(orderBy) > 0 {
		panic(fmt.Sprintf("pagination: placeholders are not allowed in ORDER BY: %q", orderBy))
	}

	return Fragment{
		predicate:    predicate,
		orderBy:      orderBy,
		placeholders: countPlaceholders(predicate),
	}
}

func (f Fragment) Placeholders() int {
	return f.placeholders
}

func (f Fragment) String() string {
	if f.orderBy == "" {
		return f.predicate
	}

	return strings.TrimSpace(f.predicate + " " + f.orderBy)
}

// whereClause never returns an empty predicate so the generated SQL stays
// valid for unfiltered pages.
func (f Fragment) whereClause() string {
	if f.predicate == "" {
		return "TRUE"
	}

	return rebind(f.predicate)
}

// splitOrderBy cuts s at the last ORDER BY that sits outside parentheses
// and string literals.
func splitOrderBy(s string) (predicate, orderBy string) {
	s = strings.TrimSpace(s)
	depths := scanDepths(s)

	cut := -1

	for _, loc := range orderByPattern.FindAllStringIndex(s, -1) {
		if depths[loc[0]] == 0 {
			cut = loc[0]
		}
	}

	if cut < 0 {
		return s, ""
	}

	return strings.TrimSpace(s[:cut]), strings.TrimSpace(s[cut:])
}

// scanDepths reports the parenthesis depth at every byte of s. Bytes inside
// a quoted literal get -1.
func scanDepths(s string) []int {
	depths := make([]int, len(s))
	depth := 0
	inQuote := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '\'':
			inQuote = !inQuote
			depths[i] = -1

			continue
		case inQuote:
			depths[i] = -1

			continue
		case c == '(':
			depth++
		case c == ')':
			depth--
		}

		depths[i] = depth
	}

	return depths
}

func countPlaceholders(s string) int {
	n := 0

	for i, d := range scanDepths(s) {
		if d >= 0 && s[i] == '?' {
			n++
		}
	}

	return n
}

// rebind rewrites '?' placeholders into Postgres $1..$n.
func rebind(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 8)

	n := 0

	for i, d := range scanDepths(s) {
		if d >= 0 && s[i] == '?' {
			n++

			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))

			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
