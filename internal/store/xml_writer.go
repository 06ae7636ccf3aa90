package store

import (
	"bytes"
	"encoding/xml"
	"strings"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

	// documentRoot is the root element of every file in the backup tree.
	documentRoot = "backup"
)

type xmlAttr struct {
	name  string
	value string
}

func attr(name, value string) xmlAttr {
	return xmlAttr{name: name, value: value}
}

// xmlWriter renders tab-indented documents. encoding/xml cannot emit
// self-closed elements, which the backup format relies on for empty nodes.
type xmlWriter struct {
	buf   bytes.Buffer
	depth int
}

func newXMLDocument() *xmlWriter {
	w := &xmlWriter{}
	w.buf.WriteString(xmlHeader)
	w.open(documentRoot)
	return w
}

func (w *xmlWriter) open(name string, attrs ...xmlAttr) {
	w.startTag(name, attrs)
	w.buf.WriteString(">\n")
	w.depth++
}

func (w *xmlWriter) close(name string) {
	w.depth--
	w.indent()
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteString(">\n")
}

func (w *xmlWriter) empty(name string, attrs ...xmlAttr) {
	w.startTag(name, attrs)
	w.buf.WriteString(" />\n")
}

// text writes an element holding escaped character data. An empty text
// produces a self-closed element.
func (w *xmlWriter) text(name, text string, attrs ...xmlAttr) {
	if text == "" {
		w.empty(name, attrs...)
		return
	}
	w.startTag(name, attrs)
	w.buf.WriteByte('>')
	w.escape(text)
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteString(">\n")
}

// bytes closes the root element and returns the document.
func (w *xmlWriter) bytes() []byte {
	w.close(documentRoot)
	return w.buf.Bytes()
}

func (w *xmlWriter) startTag(name string, attrs []xmlAttr) {
	w.indent()
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, a := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(a.name)
		w.buf.WriteString(`="`)
		w.escape(a.value)
		w.buf.WriteByte('"')
	}
}

func (w *xmlWriter) indent() {
	w.buf.WriteString(strings.Repeat("\t", w.depth))
}

func (w *xmlWriter) escape(s string) {
	// bytes.Buffer never fails on write
	_ = xml.EscapeText(&w.buf, []byte(s))
}

func boolAttr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
