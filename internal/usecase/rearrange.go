package usecase

import (
	"fmt"
	"io"
	"strings"

	"rearranger/config"
	"rearranger/internal/adapter/analyzer"
	"rearranger/internal/adapter/random"
	"rearranger/internal/adapter/selector"
	"rearranger/internal/port"
)

// WordSelector resolves the replacement for one input word.
type WordSelector interface {
	Select(word string) string
}

// RearrangeUseCase rewrites an input stream word by word.
type RearrangeUseCase struct {
	splitter    *analyzer.Splitter
	selector    WordSelector
	rng         port.Random
	newlines    config.NewlineConfig
	jabberwocky config.JabberwockyConfig
	pacer       *Pacer
}

// NewRearrangeUseCase creates a new rearrange use case.
func NewRearrangeUseCase(
	splitter *analyzer.Splitter,
	sel WordSelector,
	rng port.Random,
	cfg *config.Config,
	pacer *Pacer,
) *RearrangeUseCase {
	return &RearrangeUseCase{
		splitter:    splitter,
		selector:    sel,
		rng:         rng,
		newlines:    cfg.Newlines,
		jabberwocky: cfg.Jabberwocky,
		pacer:       pacer,
	}
}

// RearrangeResult contains counters for one rewrite.
type RearrangeResult struct {
	Words    int
	Replaced int
	Dropped  int
	Blended  int
	Kicked   int
}

// Rearrange reads input to the end and writes the rewritten text to output.
// Lines are written as soon as they are complete.
func (u *RearrangeUseCase) Rearrange(input io.Reader, output io.Writer) (*RearrangeResult, error) {
	result := &RearrangeResult{}
	out := &lineWriter{w: output, pacer: u.pacer}
	var line strings.Builder

	flush := func() {
		out.emit(strings.ReplaceAll(line.String(), " \n", "\n"))
		line.Reset()
	}

	stream := analyzer.Tokenize(input)
	for out.err == nil {
		token, ok := stream.Next()
		if !ok {
			break
		}

		switch token {
		case "\n":
			switch {
			case u.newlines.HardTruncate:
			case line.Len() > 0:
				line.WriteString("\n")
				flush()
			case u.newlines.TruncateMultiple && out.blankRun():
			default:
				out.emit("\n")
			}
			continue
		case "":
			if !u.newlines.TruncateWhitespace {
				line.WriteString(" ")
			}
			continue
		}

		tok := u.splitter.Split(token)
		line.WriteString(tok.Prefix)
		if tok.Core != "" {
			line.WriteString(u.replace(tok.Core, result))
		}
		line.WriteString(tok.Suffix)

		text := line.String()
		switch {
		case !u.newlines.HardTruncate && random.Roll(u.rng, u.newlines.KickChance):
			line.WriteString("\n")
			result.Kicked++
		case text != "" && !strings.HasSuffix(text, "\n") && !u.newlines.TruncateWhitespace:
			line.WriteString(" ")
		default:
			flush()
		}
	}

	if err := stream.Err(); err != nil {
		return result, fmt.Errorf("failed to read input: %w", err)
	}

	if !u.newlines.HardTruncate && line.Len() > 0 && !strings.HasSuffix(line.String(), "\n") {
		line.WriteString("\n")
	}
	flush()
	if !u.newlines.HardTruncate && out.written && !out.endsNewline {
		out.write("\n")
	}
	if out.err != nil {
		return result, fmt.Errorf("failed to write output: %w", out.err)
	}
	return result, nil
}

// replace resolves a replacement for word and applies the jabberwocky blend.
func (u *RearrangeUseCase) replace(word string, result *RearrangeResult) string {
	result.Words++

	replacement := u.selector.Select(word)
	switch {
	case replacement == "":
		result.Dropped++
		return ""
	case replacement != word:
		result.Replaced++
	}

	if u.jabberwocky.Enabled && random.Roll(u.rng, u.jabberwocky.Chance) {
		replacement = selector.Blend(word, replacement)
		result.Blended++
	}
	return replacement
}

// lineWriter writes flushed chunks and remembers whether the most recent
// ones ended in a newline. The first write error sticks.
type lineWriter struct {
	w           io.Writer
	pacer       *Pacer
	recent      [2]bool
	chunks      int
	written     bool
	endsNewline bool
	err         error
}

func (lw *lineWriter) emit(chunk string) {
	if chunk == "" {
		return
	}
	lw.pacer.Wait()
	lw.write(chunk)
	lw.recent[0], lw.recent[1] = lw.recent[1], strings.HasSuffix(chunk, "\n")
	lw.chunks++
}

func (lw *lineWriter) write(s string) {
	if lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, s); err != nil {
		lw.err = err
		return
	}
	lw.written = true
	lw.endsNewline = strings.HasSuffix(s, "\n")
}

// blankRun reports whether the last two chunks both ended in a newline.
func (lw *lineWriter) blankRun() bool {
	return lw.chunks >= 2 && lw.recent[0] && lw.recent[1]
}
