package recur

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Config is a parsed recurring transaction config file: the text before the
// first template, then the templates in file order.
type Config struct {
	Preamble  string
	Templates []*Template
}

// Regex groups:
// 1: due date
// 2: separator between date and period
// 3: period token
var headerRegex = regexp.MustCompile(`^(` + dateExpr + `)(\s*)\((-?\d+[ymwd])\)`)

// ParseConfigFile parses the config file at filename.
func ParseConfigFile(filename string) (*Config, error) {
	ifile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer ifile.Close()

	return parseConfig(filename, ifile)
}

// ParseConfig parses config text. Lines that do not start a template belong
// to the preamble until the first template is seen, and to the template
// above them after that, so nothing is dropped or reordered.
func ParseConfig(r io.Reader) (*Config, error) {
	return parseConfig("", r)
}

type parser struct {
	name   string
	reader *bufio.Reader
	lineNo int

	conf    Config
	current *Template
}

func parseConfig(name string, r io.Reader) (*Config, error) {
	p := parser{name: name, reader: bufio.NewReader(r)}

	for {
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %w", p.name, p.lineNo, ErrIO, err)
		}

		t, err := parseHeader(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: unable to parse template: %w", p.name, p.lineNo, err)
		}

		switch {
		case t != nil:
			p.closeTemplate()
			p.current = t
		case p.current == nil:
			p.conf.Preamble += line
		default:
			p.current.Lines = append(p.current.Lines, line)
		}
	}
	p.closeTemplate()

	return &p.conf, nil
}

func (p *parser) closeTemplate() {
	if p.current != nil {
		p.conf.Templates = append(p.conf.Templates, p.current)
		p.current = nil
	}
}

// readLine returns the next line including its terminator. The last line of
// the input may have none.
func (p *parser) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if len(line) == 0 {
		return "", io.EOF
	}
	p.lineNo++
	return line, nil
}

// parseHeader returns the template started by line, or nil if line does not
// start one.
func parseHeader(line string) (*Template, error) {
	m := headerRegex.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}

	due, err := ParseDate(m[1])
	if err != nil {
		return nil, err
	}

	return &Template{
		Due:       due,
		DueText:   m[1],
		Separator: m[2],
		Period:    m[3],
		Lines:     []string{line[len(m[0]):]},
	}, nil
}

// String renders the config file.
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString(c.Preamble)
	for _, t := range c.Templates {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// WriteTo writes the rendered config file to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// Clone returns a copy of c whose templates can be expanded independently.
func (c *Config) Clone() *Config {
	out := &Config{Preamble: c.Preamble}
	for _, t := range c.Templates {
		out.Templates = append(out.Templates, t.Clone())
	}
	return out
}
