package cronlex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zalgonoise/parse"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
)

// Expand parses the input cron field and returns the (unsorted, possibly repeated) values it denotes, within the
// input minimum and maximum bounds. It returns a cronerr.ErrFormat error if the field is malformed.
//
// The field is a comma-separated list of items, where each item is one of:
//   - a wildcard (`*` or `?`), which resolves the entire field to every value from minimum to maximum;
//   - a single value (e.g. `5`), which is not bounds-checked here;
//   - a range (e.g. `1-5`), with every value from its start to its end;
//   - an interval (e.g. `5/15` or `*/15`), with every step from its start (or minimum, for `*`) up to maximum.
//
// Items are expanded in order. Reaching a wildcard returns the full range immediately, ignoring the items that follow.
func Expand(field string, minimum, maximum int) ([]int, error) {
	if field == "" {
		return nil, cronerr.Format(cronerr.ReasonEmpty, "time", field, "empty time string")
	}

	// the lexer reads a NUL byte as the end of input
	if strings.IndexByte(field, 0) >= 0 {
		return nil, cronerr.Format(cronerr.ReasonMalformedItem, "time", field, "unexpected NUL byte in time string")
	}

	return parse.Run([]byte(field), StateFunc, ParseFunc, newProcessFunc(field, minimum, maximum))
}

func newProcessFunc(field string, minimum, maximum int) func(t *parse.Tree[Token, byte]) ([]int, error) {
	return func(t *parse.Tree[Token, byte]) ([]int, error) {
		return ProcessFunc(t, field, minimum, maximum)
	}
}

// ProcessFunc is the third and last phase of the field expander, which consumes a parse.Tree scoped to Token and
// byte, returning the values in the field and an error if raised.
func ProcessFunc(t *parse.Tree[Token, byte], field string, minimum, maximum int) ([]int, error) {
	items := splitItems(t.List())
	values := make([]int, 0, len(items))

	for i := range items {
		if isWildcard(items[i]) {
			return buildRange(minimum, maximum, 1), nil
		}

		itemValues, err := processItem(items[i], field, minimum, maximum)
		if err != nil {
			return nil, err
		}

		values = append(values, itemValues...)
	}

	if len(values) == 0 {
		return nil, cronerr.Format(cronerr.ReasonEmpty, "time", field, "no values in time string")
	}

	return values, nil
}

// splitItems groups the top-level nodes into comma-separated items. An empty item (a leading, trailing or repeated
// comma) holds no nodes, while operands that follow each other with no comma between them are grouped together,
// to be rejected as a malformed item.
func splitItems(nodes []*parse.Node[Token, byte]) [][]*parse.Node[Token, byte] {
	items := make([][]*parse.Node[Token, byte], 0, len(nodes)/2+1)
	expectItem := true

	for i := range nodes {
		if nodes[i].Type == TokenComma {
			if expectItem {
				items = append(items, nil)
			}

			expectItem = true

			continue
		}

		if !expectItem {
			items[len(items)-1] = append(items[len(items)-1], nodes[i])

			continue
		}

		items = append(items, []*parse.Node[Token, byte]{nodes[i]})
		expectItem = false
	}

	if expectItem {
		items = append(items, nil)
	}

	return items
}

func isWildcard(item []*parse.Node[Token, byte]) bool {
	return len(item) == 1 &&
		(item[0].Type == TokenStar || item[0].Type == TokenQuestion) &&
		len(item[0].Edges) == 0
}

func processItem(item []*parse.Node[Token, byte], field string, minimum, maximum int) ([]int, error) {
	if len(item) != 1 {
		return nil, malformed(item, field)
	}

	node := item[0]

	switch len(node.Edges) {
	case 0:
		value, ok := number(node)
		if !ok {
			return nil, malformed(item, field)
		}

		return []int{value}, nil
	case 1:
		symbol := node.Edges[0]
		if len(symbol.Edges) != 1 || len(symbol.Edges[0].Edges) != 0 {
			return nil, malformed(item, field)
		}

		operand, ok := number(symbol.Edges[0])
		if !ok {
			return nil, malformed(item, field)
		}

		switch symbol.Type {
		case TokenDash:
			return processRange(node, operand, item, field, minimum, maximum)
		case TokenSlash:
			return processInterval(node, operand, item, field, minimum, maximum)
		}
	}

	return nil, malformed(item, field)
}

func processRange(
	node *parse.Node[Token, byte], end int, item []*parse.Node[Token, byte], field string, minimum, maximum int,
) ([]int, error) {
	start, ok := number(node)
	if !ok {
		return nil, malformed(item, field)
	}

	if start < minimum || end < start || maximum < end {
		return nil, cronerr.Format(cronerr.ReasonRange, "time", field, fmt.Sprintf(
			"range %q out of bounds: min: %d; max: %d", render(item), minimum, maximum,
		))
	}

	return buildRange(start, end, 1), nil
}

func processInterval(
	node *parse.Node[Token, byte], step int, item []*parse.Node[Token, byte], field string, minimum, maximum int,
) ([]int, error) {
	start := minimum

	if node.Type != TokenStar {
		var ok bool

		if start, ok = number(node); !ok {
			return nil, malformed(item, field)
		}
	}

	if start < minimum || step < 1 || maximum < start {
		return nil, cronerr.Format(cronerr.ReasonInterval, "time", field, fmt.Sprintf(
			"interval %q out of bounds: min: %d; max: %d", render(item), minimum, maximum,
		))
	}

	return buildRange(start, maximum, step), nil
}

// number returns the integer value of an alphanumeric node, if it is composed of digits only.
func number(node *parse.Node[Token, byte]) (int, bool) {
	if node.Type != TokenAlphaNum || len(node.Value) == 0 {
		return 0, false
	}

	for i := range node.Value {
		if node.Value[i] < '0' || node.Value[i] > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(string(node.Value))
	if err != nil {
		return 0, false
	}

	return value, true
}

func malformed(item []*parse.Node[Token, byte], field string) error {
	return cronerr.Format(cronerr.ReasonMalformedItem, "time", field, fmt.Sprintf(
		"unexpected format of item %q", render(item),
	))
}

// render rebuilds the raw text of an item out of its nodes.
func render(item []*parse.Node[Token, byte]) string {
	sb := &strings.Builder{}

	for i := range item {
		writeNode(sb, item[i])
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, node *parse.Node[Token, byte]) {
	sb.Write(node.Value)

	for i := range node.Edges {
		writeNode(sb, node.Edges[i])
	}
}

func buildRange(from, to, step int) []int {
	if to < from || step < 1 {
		return []int{}
	}

	out := make([]int, 0, (to-from)/step+1)
	for i := from; i <= to; i += step {
		out = append(out, i)
	}

	return out
}
