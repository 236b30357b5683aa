package changelog

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Entry is a single version section of the changelog.
type Entry struct {
	Version string
	Date    string
	Body    string
}

// Changelog is a parsed Keep a Changelog document.
type Changelog struct {
	Entries []Entry
	Links   map[string]string
}

// Find returns the entry for version, tolerating a leading "v", or nil.
func (c *Changelog) Find(version string) *Entry {
	version = strings.TrimPrefix(version, "v")

	for i := range c.Entries {
		if strings.TrimPrefix(c.Entries[i].Version, "v") == version {
			return &c.Entries[i]
		}
	}
	return nil
}

// Latest returns the most recent released entry, skipping Unreleased.
func (c *Changelog) Latest() *Entry {
	for i := range c.Entries {
		if !strings.EqualFold(c.Entries[i].Version, "unreleased") {
			return &c.Entries[i]
		}
	}
	return nil
}

// Parse reads a Keep a Changelog formatted markdown document. Version
// sections are level-2 headings of the form "[X.Y.Z] - YYYY-MM-DD";
// their bodies run until the next level-2 heading.
func Parse(source []byte) (*Changelog, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	c := &Changelog{Links: make(map[string]string)}
	for _, ref := range ctx.References() {
		c.Links[string(ref.Label())] = string(ref.Destination())
	}

	type section struct {
		version   string
		date      string
		bodyStart int
		headStart int
	}
	var sections []section

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitVersionHeading(headingText(heading, source))

		headStart, bodyStart := 0, 0
		if lines := heading.Lines(); lines.Len() > 0 {
			headStart = lines.At(0).Start
			bodyStart = lines.At(lines.Len() - 1).Stop
		}

		sections = append(sections, section{version, date, bodyStart, headStart})
		return ast.WalkContinue, nil
	})

	for i, sec := range sections {
		end := len(source)
		if i+1 < len(sections) {
			end = sections[i+1].headStart
		}

		body := ""
		if sec.bodyStart < end {
			body = strings.TrimSpace(string(source[sec.bodyStart:end]))
		}

		c.Entries = append(c.Entries, Entry{Version: sec.version, Date: sec.date, Body: body})
	}

	return c, nil
}

func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
		case *ast.Link:
			for lc := n.FirstChild(); lc != nil; lc = lc.NextSibling() {
				if t, ok := lc.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
				}
			}
		}
	}
	return buf.String()
}

func splitVersionHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)

	heading = strings.TrimPrefix(heading, "[")
	if idx := strings.Index(heading, "]"); idx != -1 {
		version = heading[:idx]
		rest := strings.TrimSpace(heading[idx+1:])
		if strings.HasPrefix(rest, "- ") {
			date = strings.TrimSpace(rest[2:])
		}
		return version, date
	}

	if idx := strings.Index(heading, " - "); idx != -1 {
		return strings.TrimSpace(heading[:idx]), strings.TrimSpace(heading[idx+3:])
	}
	return heading, ""
}
