package docx

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

var wsRun = regexp.MustCompile(`[ \t]+`)

// cleanText normalises whitespace: line endings become \n, runs of spaces
// and tabs collapse to one space, each line is trimmed, and leading and
// trailing blank lines are dropped.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(wsRun.ReplaceAllString(line, " "))
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// blockParser is the streaming state machine over word/document.xml tokens.
// It tracks paragraph/run/table context so nested structures end up in the
// right place: paragraph text inside a table cell belongs to the cell, and
// a table nested inside a cell folds into the outer cell's text.
type blockParser struct {
	ctx    context.Context
	blocks []domain.Block

	// element name stack for context queries
	stack []string

	// paragraph state
	inPara    bool
	paraStyle string
	paraText  strings.Builder

	// table state
	tableDepth int
	rows       [][]string
	currRow    []string
	gridBefore int
	gridAfter  int
	inCell     bool
	cellSpan   int
	cellParas  int
	cellText   strings.Builder
}

func (p *blockParser) push(name string) { p.stack = append(p.stack, name) }

func (p *blockParser) pop() {
	if len(p.stack) > 0 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

func (p *blockParser) inCtx(name string) bool {
	for _, s := range p.stack {
		if s == name {
			return true
		}
	}
	return false
}

// parseBody parses the document body into blocks.
// The context is checked each time a top-level block completes.
func parseBody(ctx context.Context, r io.Reader) ([]domain.Block, error) {
	dec := xml.NewDecoder(r)
	p := &blockParser{ctx: ctx}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing document xml: %v", domain.ErrCorruptDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.push(t.Name.Local)
			p.handleStart(t)
		case xml.EndElement:
			if err := p.handleEnd(t.Name.Local); err != nil {
				return nil, err
			}
			p.pop()
		case xml.CharData:
			p.handleText(string(t))
		}
	}

	return p.blocks, nil
}

func (p *blockParser) handleStart(t xml.StartElement) {
	switch t.Name.Local {

	// --- table ---
	case "tbl":
		p.tableDepth++
		if p.tableDepth == 1 {
			p.rows = nil
		}
	case "tr":
		if p.tableDepth == 1 {
			p.currRow = nil
			p.gridBefore = 0
			p.gridAfter = 0
		}
	case "gridBefore":
		if p.tableDepth == 1 && p.inCtx("trPr") {
			p.gridBefore = intAttr(t, "val")
		}
	case "gridAfter":
		if p.tableDepth == 1 && p.inCtx("trPr") {
			p.gridAfter = intAttr(t, "val")
		}
	case "tc":
		if p.tableDepth == 1 {
			p.inCell = true
			p.cellSpan = 1
			p.cellParas = 0
			p.cellText.Reset()
		}
	case "gridSpan":
		if p.inCell && p.inCtx("tcPr") {
			if n := intAttr(t, "val"); n > 1 {
				p.cellSpan = n
			}
		}

	// --- paragraph ---
	case "p":
		if p.tableDepth == 0 {
			p.inPara = true
			p.paraStyle = ""
			p.paraText.Reset()
		} else if p.inCell {
			if p.cellParas > 0 {
				p.cellText.WriteByte('\n')
			}
			p.cellParas++
		}
	case "pStyle":
		if p.inPara && p.tableDepth == 0 && p.inCtx("pPr") {
			p.paraStyle = attrVal(t, "val")
		}

	// --- run content ---
	case "br", "cr":
		p.writeText("\n")
	case "tab":
		if p.inCtx("r") {
			p.writeText("\t")
		}
	}
}

func (p *blockParser) handleEnd(local string) error {
	switch local {

	case "p":
		if p.tableDepth == 0 && p.inPara {
			p.inPara = false
			text := cleanText(p.paraText.String())
			if text != "" {
				p.blocks = append(p.blocks, domain.Block{
					Kind:      domain.BlockParagraph,
					Text:      text,
					StyleHint: p.paraStyle,
				})
			}
			if err := p.ctx.Err(); err != nil {
				return err
			}
		}

	case "tc":
		if p.tableDepth == 1 && p.inCell {
			p.inCell = false
			p.currRow = append(p.currRow, cleanText(p.cellText.String()))
			// Horizontally merged cells keep their column count.
			for i := 1; i < p.cellSpan; i++ {
				p.currRow = append(p.currRow, "")
			}
		}

	case "tr":
		if p.tableDepth == 1 {
			row := make([]string, 0, p.gridBefore+len(p.currRow)+p.gridAfter)
			for i := 0; i < p.gridBefore; i++ {
				row = append(row, "")
			}
			row = append(row, p.currRow...)
			for i := 0; i < p.gridAfter; i++ {
				row = append(row, "")
			}
			p.rows = append(p.rows, row)
		}

	case "tbl":
		p.tableDepth--
		if p.tableDepth == 0 {
			p.blocks = append(p.blocks, domain.Block{
				Kind: domain.BlockTable,
				Rows: p.rows,
			})
			p.rows = nil
			if err := p.ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// handleText routes character data from w:t elements to the active builder.
func (p *blockParser) handleText(s string) {
	if len(p.stack) == 0 || p.stack[len(p.stack)-1] != "t" {
		return
	}
	p.writeText(s)
}

func (p *blockParser) writeText(s string) {
	switch {
	case p.inCell:
		p.cellText.WriteString(s)
	case p.inPara:
		p.paraText.WriteString(s)
	}
}

// partParser extracts plain text from a header or footer part.
type partParser struct {
	stack  []string
	inPara bool
	para   strings.Builder
	lines  []string
}

// parsePartText returns the cleaned text of one header/footer part,
// paragraphs joined by newlines.
func parsePartText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	p := &partParser{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.stack = append(p.stack, t.Name.Local)
			switch t.Name.Local {
			case "p":
				p.inPara = true
				p.para.Reset()
			case "br", "cr":
				if p.inPara {
					p.para.WriteByte('\n')
				}
			case "tab":
				if p.inPara {
					p.para.WriteByte('\t')
				}
			}
		case xml.EndElement:
			if t.Name.Local == "p" && p.inPara {
				p.inPara = false
				if text := cleanText(p.para.String()); text != "" {
					p.lines = append(p.lines, text)
				}
			}
			if len(p.stack) > 0 {
				p.stack = p.stack[:len(p.stack)-1]
			}
		case xml.CharData:
			if p.inPara && len(p.stack) > 0 && p.stack[len(p.stack)-1] == "t" {
				p.para.WriteString(string(t))
			}
		}
	}

	return strings.Join(p.lines, "\n"), nil
}

func attrVal(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func intAttr(t xml.StartElement, name string) int {
	n, err := strconv.Atoi(attrVal(t, name))
	if err != nil {
		return 0
	}
	return n
}
