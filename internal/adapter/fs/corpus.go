package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"golang.org/x/net/html"

	"rearranger/internal/port"
)

// Corpus is a source corpus read as one stream. Directory corpora are read
// file by file in path order; each file is opened only when reached.
type Corpus struct {
	files   []port.FileInfo
	next    int
	current io.Reader
	closer  io.Closer
}

// OpenCorpus opens path as a corpus. A directory is walked with walker.
func OpenCorpus(path string, walker port.FileWalker) (*Corpus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}

	if !info.IsDir() {
		return &Corpus{files: []port.FileInfo{{Path: path, ModTime: info.ModTime().Unix(), Size: info.Size()}}}, nil
	}

	files, err := walker.Walk(path)
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no corpus files matched under %s", path)
	}
	return &Corpus{files: files}, nil
}

// Files returns the files making up the corpus.
func (c *Corpus) Files() []port.FileInfo {
	return c.files
}

// Size returns the total on-disk size of the corpus files.
func (c *Corpus) Size() int64 {
	var total int64
	for _, f := range c.files {
		total += f.Size
	}
	return total
}

// Read implements io.Reader over the concatenated, decoded files. A newline
// is inserted between files that do not end in one.
func (c *Corpus) Read(p []byte) (int, error) {
	for {
		if c.current == nil {
			if c.next >= len(c.files) {
				return 0, io.EOF
			}
			if err := c.openNext(); err != nil {
				return 0, err
			}
		}

		n, err := c.current.Read(p)
		if err == io.EOF {
			c.closeCurrent()
			err = nil
			if n == 0 {
				continue
			}
		}
		return n, err
	}
}

// Close releases the file currently being read.
func (c *Corpus) Close() error {
	return c.closeCurrent()
}

func (c *Corpus) openNext() error {
	path := c.files[c.next].Path
	c.next++

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}

	r, err := decode(path, f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	c.current = &newlineTerminated{r: r}
	c.closer = f
	return nil
}

func (c *Corpus) closeCurrent() error {
	c.current = nil
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}

// newlineTerminated appends a newline at EOF when the stream read so far is
// non-empty and does not already end in one, so the last line of one file
// never merges with the first line of the next.
type newlineTerminated struct {
	r       io.Reader
	last    byte
	seen    bool
	pending bool
	done    bool
}

func (n *newlineTerminated) Read(p []byte) (int, error) {
	if n.pending {
		if len(p) == 0 {
			return 0, nil
		}
		p[0] = '\n'
		n.pending, n.done = false, true
		return 1, nil
	}
	if n.done {
		return 0, io.EOF
	}

	c, err := n.r.Read(p)
	if c > 0 {
		n.last, n.seen = p[c-1], true
	}
	if err != io.EOF {
		return c, err
	}
	if n.seen && n.last != '\n' {
		n.pending = true
		return c, nil
	}
	n.done = true
	return c, io.EOF
}

// decode wraps r according to the file extension.
func decode(path string, r io.Reader) (io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xz":
		xr, err := xz.NewReader(bufio.NewReader(r))
		if err != nil {
			return nil, err
		}
		inner := strings.TrimSuffix(strings.ToLower(path), ".xz")
		if strings.HasSuffix(inner, ".html") || strings.HasSuffix(inner, ".htm") {
			return htmlText(xr)
		}
		return xr, nil
	case ".html", ".htm":
		return htmlText(r)
	default:
		return r, nil
	}
}

// htmlText extracts the visible text of an HTML document, one text node per
// line, skipping script and style contents.
func htmlText(r io.Reader) (io.Reader, error) {
	var b strings.Builder
	z := html.NewTokenizer(r)
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return strings.NewReader(b.String()), nil
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawText(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawText(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
	}
}

func isRawText(tag []byte) bool {
	name := string(tag)
	return name == "script" || name == "style"
}
