package nflcom

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

// ParseLeaders reads the first table in the document. The stat cell is taken from the
// header column named column, or fallbackStatIndex when no header matches. Player name
// and team come from cells 1 and 2; rows missing either are skipped. A document with no
// table yields an empty list.
func ParseLeaders(r io.Reader, column string) ([]stats.PlayerStat, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("nflcom: parse html: %w", err)
	}

	players := make([]stats.PlayerStat, 0)
	table := findFirst(doc, atom.Table)
	if table == nil {
		return players, nil
	}

	statIdx := fallbackStatIndex
	if head := findFirst(table, atom.Thead); head != nil {
		for i, th := range findAll(head, atom.Th) {
			if nodeText(th) == column {
				statIdx = i
				break
			}
		}
	}

	body := findFirst(table, atom.Tbody)
	if body == nil {
		return players, nil
	}

	for _, tr := range findAll(body, atom.Tr) {
		cells := findAll(tr, atom.Td)
		if len(cells) <= statIdx {
			continue
		}
		var name, team string
		if len(cells) > 1 {
			name = nodeText(cells[1])
		}
		if len(cells) > 2 {
			team = nodeText(cells[2])
		}
		if name == "" || team == "" {
			continue
		}
		players = append(players, stats.PlayerStat{
			Name: name,
			Team: team,
			Stat: stats.NumberValue(parseStat(nodeText(cells[statIdx]))),
		})
	}
	return players, nil
}

// parseStat strips thousands separators; unparsable or non-finite text counts as zero.
func parseStat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// nodeText concatenates the trimmed text nodes under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
