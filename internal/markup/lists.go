package markup

import (
	"regexp"
	"strings"
)

// unorderedLists claims "- ", "+ " and "* " lines as items and wraps runs
// of them in <ul>.
func unorderedLists(mode ListMode) stage {
	return func(lines []line) []line {
		lines = claimItems(lines, unorderedPattern, false)
		return wrapRuns(lines, false, "ul", mode)
	}
}

// orderedLists claims "1. " style lines as items and wraps runs of them in
// <ol>. Runs of unordered items were already wrapped by the previous stage
// and are never wrapped twice.
func orderedLists(mode ListMode) stage {
	return func(lines []line) []line {
		lines = claimItems(lines, orderedPattern, true)
		return wrapRuns(lines, true, "ol", mode)
	}
}

func claimItems(lines []line, re *regexp.Regexp, ordered bool) []line {
	for i, l := range lines {
		if l.kind != kindText {
			continue
		}
		m := re.FindStringSubmatch(l.text)
		if m == nil {
			continue
		}
		lines[i] = line{kind: kindListItem, text: "<li>" + m[1] + "</li>", ordered: ordered}
	}
	return lines
}

// wrapRuns collapses each contiguous run of matching items into a single
// container record. In ListsFirstRun mode only the first run is wrapped.
func wrapRuns(lines []line, ordered bool, tag string, mode ListMode) []line {
	out := make([]line, 0, len(lines))
	wrapped := false

	for i := 0; i < len(lines); {
		l := lines[i]
		if l.kind != kindListItem || l.ordered != ordered || (wrapped && mode == ListsFirstRun) {
			out = append(out, l)
			i++
			continue
		}

		j := i
		var items []string
		for j < len(lines) && lines[j].kind == kindListItem && lines[j].ordered == ordered {
			items = append(items, lines[j].text)
			j++
		}
		out = append(out, line{
			kind: kindList,
			text: "<" + tag + ">" + strings.Join(items, "\n") + "</" + tag + ">",
		})
		wrapped = true
		i = j
	}
	return out
}
