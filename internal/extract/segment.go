package extract

import "strings"

// Segmenter partitions raw clinical text into named logical sections using a
// fixed header vocabulary. It is a small finite-state machine over the line
// stream: idle until a header opens a section, capturing until a different
// header closes it.
type Segmenter struct {
	headers []headerEntry
	// headerMaxLen is the length above which a line needs a colon to count
	// as a header; long narrative lines mentioning a header keyword in
	// passing must not open a section.
	headerMaxLen int
}

func NewSegmenter() *Segmenter {
	return &Segmenter{headers: sectionHeaders, headerMaxLen: 60}
}

type segState int

const (
	segIdle segState = iota
	segCapturing
)

// Segment returns one concatenated text block per encountered section name,
// trimmed of surrounding whitespace. If no header is ever matched the whole
// text is returned under DefaultSection. Section names are deterministic for
// identical input.
func (s *Segmenter) Segment(text string) map[string]string {
	lines := strings.Split(text, "\n")
	buffers := map[string]*strings.Builder{}
	order := []string{}

	appendLine := func(name, line string) {
		b, ok := buffers[name]
		if !ok {
			b = &strings.Builder{}
			buffers[name] = b
			order = append(order, name)
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}

	state := segIdle
	current := ""

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		name, rest, isHeader := s.matchHeader(line)

		switch state {
		case segIdle:
			if isHeader {
				current = name
				state = segCapturing
				if rest != "" {
					appendLine(current, rest)
				} else {
					// seed the section even when the header line carries no content
					if _, ok := buffers[current]; !ok {
						buffers[current] = &strings.Builder{}
						order = append(order, current)
					}
				}
			} else {
				appendLine(DefaultSection, line)
			}
		case segCapturing:
			if isHeader && name != current {
				// Close the current section without consuming the line; it
				// reopens segmentation on the next pass.
				state = segIdle
				i--
				continue
			}
			if isHeader && name == current {
				if rest != "" {
					appendLine(current, rest)
				}
				continue
			}
			appendLine(current, line)
		}
	}

	out := make(map[string]string, len(buffers))
	for _, name := range order {
		out[name] = strings.TrimSpace(buffers[name].String())
	}
	if len(out) == 0 {
		out[DefaultSection] = strings.TrimSpace(text)
	}
	return out
}

// matchHeader reports whether the line opens a known section. A line is a
// header when it starts with a vocabulary token and is either short or
// carries a colon; both signals mark deliberate headings rather than
// narrative mentions.
func (s *Segmenter) matchHeader(line string) (name, rest string, ok bool) {
	folded := foldLine(line)
	for _, h := range s.headers {
		if !strings.HasPrefix(folded, h.token) {
			continue
		}
		tail := folded[len(h.token):]
		if tail != "" {
			// token must end at a word boundary
			c := tail[0]
			if c != ' ' && c != ':' && c != '.' && c != '-' {
				continue
			}
		}
		if len([]rune(folded)) > s.headerMaxLen && !strings.Contains(line, ":") {
			continue
		}
		// Accent folding is rune-for-rune, so the token length in runes maps
		// cleanly back onto the original line.
		runes := []rune(line)
		rest = string(runes[len([]rune(h.token)):])
		rest = strings.TrimLeft(rest, ":-. ")
		rest = strings.TrimSpace(rest)
		return h.canonical, rest, true
	}
	return "", "", false
}
