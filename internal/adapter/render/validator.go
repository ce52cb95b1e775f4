package render

import (
	"regexp"
	"sort"
	"strings"
	"text/template/parse"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// TemplateFields lists the top-level context keys an html/template source
// reads. Fields under range or with bodies belong to the item, not the
// context, and are skipped; $.key references are counted.
func TemplateFields(src string) ([]string, error) {
	tree := parse.New("fields")
	tree.Mode = parse.SkipFuncCheck
	if _, err := tree.Parse(src, "", "", map[string]*parse.Tree{}); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	walkNode(tree.Root, true, func(name string) { seen[name] = struct{}{} })
	return sortedKeys(seen), nil
}

// TextPlaceholders extracts {{ name }} tokens from plain document text.
// Dotted paths and calls are not simple placeholders and are ignored.
func TextPlaceholders(text string) []string {
	seen := map[string]struct{}{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if name := NormalizeKey(m[1]); name != "" {
			seen[name] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// NormalizeKey reduces "{{ name | filter }}" or "name" to "name". It returns
// "" for tokens that are not simple identifiers.
func NormalizeKey(token string) string {
	s := strings.TrimSpace(token)
	s = strings.TrimPrefix(s, "{{")
	s = strings.TrimSuffix(s, "}}")
	if i := strings.Index(s, "|"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, ".() \t") {
		return ""
	}
	return s
}

// Compare reports the placeholders no key provides and the keys no
// placeholder uses, both sorted.
func Compare(placeholders, keys []string) (missing, extra []string) {
	want := map[string]struct{}{}
	for _, p := range placeholders {
		if n := NormalizeKey(p); n != "" {
			want[n] = struct{}{}
		}
	}
	have := map[string]struct{}{}
	for _, k := range keys {
		if n := NormalizeKey(k); n != "" {
			have[n] = struct{}{}
		}
	}
	for p := range want {
		if _, ok := have[p]; !ok {
			missing = append(missing, p)
		}
	}
	for k := range have {
		if _, ok := want[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

func walkNode(n parse.Node, root bool, add func(string)) {
	switch t := n.(type) {
	case nil:
	case *parse.ListNode:
		if t == nil {
			return
		}
		for _, c := range t.Nodes {
			walkNode(c, root, add)
		}
	case *parse.ActionNode:
		walkPipe(t.Pipe, root, add)
	case *parse.IfNode:
		walkPipe(t.Pipe, root, add)
		walkNode(t.List, root, add)
		walkNode(t.ElseList, root, add)
	case *parse.RangeNode:
		walkPipe(t.Pipe, root, add)
		walkNode(t.List, false, add)
		walkNode(t.ElseList, root, add)
	case *parse.WithNode:
		walkPipe(t.Pipe, root, add)
		walkNode(t.List, false, add)
		walkNode(t.ElseList, root, add)
	case *parse.TemplateNode:
		walkPipe(t.Pipe, root, add)
	}
}

func walkPipe(p *parse.PipeNode, root bool, add func(string)) {
	if p == nil {
		return
	}
	for _, cmd := range p.Cmds {
		for _, arg := range cmd.Args {
			walkArg(arg, root, add)
		}
	}
}

func walkArg(n parse.Node, root bool, add func(string)) {
	switch t := n.(type) {
	case *parse.FieldNode:
		if root && len(t.Ident) > 0 {
			add(t.Ident[0])
		}
	case *parse.VariableNode:
		if len(t.Ident) > 1 && t.Ident[0] == "$" {
			add(t.Ident[1])
		}
	case *parse.ChainNode:
		walkArg(t.Node, root, add)
	case *parse.PipeNode:
		walkPipe(t, root, add)
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
