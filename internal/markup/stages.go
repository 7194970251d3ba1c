package markup

import (
	"regexp"
	"strings"
)

// Precompiled rule patterns. None of them match across a newline, so every
// rule except fenced code is line-anchored.
var (
	fencePattern     = regexp.MustCompile("(?s)```(.*?)```")
	headingPattern   = regexp.MustCompile(`^(#{1,6}) (.*)$`)
	strongPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emPattern        = regexp.MustCompile(`\*(.*?)\*`)
	crossRefPattern  = regexp.MustCompile(`\[\[(.*?)\]\]`)
	imagePattern     = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern      = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	inlineCodePatt   = regexp.MustCompile("`(.*?)`")
	blockTagPattern  = regexp.MustCompile(`^<(?:h[1-6]|ul|ol|li|hr|pre|p|blockquote|div|table)[\s>/]`)
	unorderedPattern = regexp.MustCompile(`^[-+*] (.*)$`)
	orderedPattern   = regexp.MustCompile(`^[0-9]+\. (.*)$`)
)

// Replacement templates. ${1} keeps the group reference from swallowing
// following name characters.
const (
	crossRefTemplate   = `<a href="#" class="wikilink" data-target="${1}">${1}</a>`
	imageTemplate      = `<img src="${2}" alt="${1}">`
	linkTemplate       = `<a href="${2}" target="_blank">${1}</a>`
	inlineCodeTemplate = `<code>${1}</code>`
	ruleText           = "---"
)

// splitFences turns src into records, claiming each ``` ... ``` region as a
// single code record. Fences are matched non-greedily and may start or end
// mid-line; the text around them becomes ordinary text records.
func splitFences(src string) []line {
	var out []line
	rest := 0
	for _, m := range fencePattern.FindAllStringSubmatchIndex(src, -1) {
		if m[0] > rest {
			out = append(out, textLines(src[rest:m[0]])...)
		}
		out = append(out, line{
			kind: kindCode,
			text: "<pre><code>" + src[m[2]:m[3]] + "</code></pre>",
		})
		rest = m[1]
	}
	if rest < len(src) || len(out) == 0 {
		out = append(out, textLines(src[rest:])...)
	}
	return out
}

func textLines(s string) []line {
	parts := strings.Split(s, "\n")
	out := make([]line, len(parts))
	for i, p := range parts {
		out[i] = line{kind: kindText, text: p}
	}
	return out
}

// headings converts "# Title" through "###### Title". The mandatory space
// after the run of hashes keeps a level-6 line from being read as level 1,
// and seven or more hashes never match.
func headings(lines []line) []line {
	for i, l := range lines {
		if l.kind != kindText {
			continue
		}
		m := headingPattern.FindStringSubmatch(l.text)
		if m == nil {
			continue
		}
		tag := "h" + string(rune('0'+len(m[1])))
		lines[i] = line{kind: kindHeading, text: "<" + tag + ">" + m[2] + "</" + tag + ">"}
	}
	return lines
}

// emphasis applies strong before em so "**x**" is never split into two
// em spans. Code records are left alone.
func emphasis(lines []line) []line {
	for i, l := range lines {
		if l.kind == kindCode {
			continue
		}
		text := strongPattern.ReplaceAllString(l.text, "<strong>${1}</strong>")
		lines[i].text = emPattern.ReplaceAllString(text, "<em>${1}</em>")
	}
	return lines
}

// crossReferences tags [[Name]] for resolution at navigation time.
func crossReferences(lines []line) []line {
	return rewriteAll(lines, crossRefPattern, crossRefTemplate)
}

// images must run before links: both share the [..](..) shape.
func images(lines []line) []line {
	return rewriteAll(lines, imagePattern, imageTemplate)
}

func links(lines []line) []line {
	return rewriteAll(lines, linkPattern, linkTemplate)
}

func inlineCode(lines []line) []line {
	return rewriteAll(lines, inlineCodePatt, inlineCodeTemplate)
}

// rewriteAll applies an inline rule to every record, code included.
func rewriteAll(lines []line, re *regexp.Regexp, tmpl string) []line {
	for i := range lines {
		lines[i].text = re.ReplaceAllString(lines[i].text, tmpl)
	}
	return lines
}

// rules converts a line consisting of exactly "---".
func rules(lines []line) []line {
	for i, l := range lines {
		if l.kind == kindText && l.text == ruleText {
			lines[i] = line{kind: kindRule, text: "<hr>"}
		}
	}
	return lines
}

// paragraphs joins consecutive plain lines into one <p>. Blank lines end a
// paragraph and are dropped. Lines that already open a block element, or
// carry a list marker the list stages will claim, are emitted on their own.
func paragraphs(lines []line) []line {
	out := make([]line, 0, len(lines))
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		out = append(out, line{
			kind: kindParagraph,
			text: "<p>" + strings.Join(pending, "\n") + "</p>",
		})
		pending = pending[:0]
	}

	for _, l := range lines {
		switch {
		case l.kind != kindText:
			flush()
			out = append(out, l)
		case strings.TrimSpace(l.text) == "":
			flush()
		case startsBlock(l.text):
			flush()
			out = append(out, l)
		default:
			pending = append(pending, l.text)
		}
	}
	flush()
	return out
}

func startsBlock(text string) bool {
	return blockTagPattern.MatchString(text) ||
		unorderedPattern.MatchString(text) ||
		orderedPattern.MatchString(text)
}
