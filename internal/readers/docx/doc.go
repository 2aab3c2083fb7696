// Package docx reads DOCX containers into ordered block sequences.
//
// DOCX files are ZIP archives containing OOXML. The body lives in
// word/document.xml; header and footer definitions live in separate
// word/header*.xml and word/footer*.xml parts. The reader stream-parses
// the XML, tracking paragraph/run/table context, and emits blocks in
// document order. Header and footer blocks are emitted once per distinct
// definition, not once per page.
package docx
