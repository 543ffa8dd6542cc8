// Package mdb builds Markdown documents programmatically.
//
// A Document is an ordered sequence of immutable Elements (headings,
// paragraphs, lists, links, images, inline formatting and code blocks). Each
// Element renders itself to Markdown; a Document joins those renderings with a
// single newline. Nothing is escaped and nothing is parsed: content is written
// exactly as given, only heading levels are clamped into 1..6.
//
// Example:
//
//	b := mdb.New().
//		Heading("Report", 1).
//		Paragraph("Generated from Go.").
//		UnorderedList("fast", "simple")
//	fmt.Println(b.String())
//	if _, err := b.WriteFile("docs", "report"); err != nil {
//		log.Fatal(err)
//	}
//
// Out-of-range Get, Replace and RemoveAt calls never fail: Get reports
// absence and the edits are no-ops. Document returns a boolean for callers
// that need to know. Preview prints a word-wrapped view for terminals.
// A Document is not safe for concurrent use.
package mdb
