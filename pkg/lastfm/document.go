package lastfm

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Element is a single node in a parsed API response.
type Element struct {
	Name     string            // Local tag name
	Attrs    map[string]string // Attributes by local name
	Text     string            // Concatenated character data, trimmed
	Children []*Element        // Child elements in document order
}

// Attr returns the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// Document is a parsed Last.fm response body.
//
// Service responses are shallow XML trees where the same tag may occur
// several times as siblings (e.g. repeated <track> entries). Lookups
// are by tag name plus positional index among all equally-named
// elements in the document, counted in document order. A Document is
// transient: it belongs to the caller of the request that produced it
// and is never cached or reused.
type Document struct {
	root *Element
}

// parseDocument parses a raw response body into a Document.
func parseDocument(body []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed response: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("malformed response: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("malformed response: unbalanced end tag")
			}
			top := stack[len(stack)-1]
			top.Text = strings.TrimSpace(top.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("malformed response: empty document")
	}
	return &Document{root: root}, nil
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// find collects every element named name anywhere in the document, in
// document order (pre-order walk). The root itself is included so a
// bare envelope can be inspected too.
func (d *Document) find(name string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		if e.Name == name {
			out = append(out, e)
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Extract returns the text content of the index-th element named name,
// counting equally-named elements in document order from zero.
//
// It returns a *NotFoundError if the document holds fewer than index+1
// such elements; extraction never substitutes an empty default, since
// a miss signals that the response shape is not what the caller
// expected.
func (d *Document) Extract(name string, index int) (string, error) {
	matches := d.find(name)
	if index < 0 || index >= len(matches) {
		return "", &NotFoundError{Name: name, Index: index, Count: len(matches)}
	}
	return matches[index].Text, nil
}

// ExtractAll returns the text content of elements named name in
// document order.
//
// A limit <= 0 means every match. A positive limit returns exactly the
// first limit matches and fails with *NotFoundError when the document
// holds fewer than that: the caller asked for a count the response
// cannot satisfy, and silently returning a short slice would hide the
// contract drift.
func (d *Document) ExtractAll(name string, limit int) ([]string, error) {
	matches := d.find(name)
	n := len(matches)
	if limit > 0 {
		if limit > n {
			return nil, &NotFoundError{Name: name, Index: limit - 1, Count: n}
		}
		n = limit
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = matches[i].Text
	}
	return out, nil
}

// ExtractElement returns the index-th element named name, for callers
// that need attributes rather than text.
func (d *Document) ExtractElement(name string, index int) (*Element, error) {
	matches := d.find(name)
	if index < 0 || index >= len(matches) {
		return nil, &NotFoundError{Name: name, Index: index, Count: len(matches)}
	}
	return matches[index], nil
}

// Count returns how many elements named name the document holds.
func (d *Document) Count(name string) int {
	return len(d.find(name))
}
