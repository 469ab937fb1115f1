package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/artem13815/hagrid/pkg/interaction"
	"github.com/artem13815/hagrid/pkg/taxonomy"
)

// Console is the line-oriented terminal side of a session: it announces
// outgoing requests, asks for the topic and walks the user through
// choosing a category and subcategory.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	pending  chan readResult
	renderer *glamour.TermRenderer

	prompt lipgloss.Style
	notice lipgloss.Style
	option lipgloss.Style
	errorS lipgloss.Style
	muted  lipgloss.Style
}

type Option func(*Console)

type readResult struct {
	line string
	err  error
}

// WithMarkdown renders final answers through glamour.
func WithMarkdown(wordWrap int) Option {
	return func(c *Console) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrap),
		)
		if err == nil {
			c.renderer = r
		}
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	r := lipgloss.NewRenderer(out)
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		notice: r.NewStyle().Foreground(lipgloss.Color("13")),
		option: r.NewStyle().Foreground(lipgloss.Color("11")),
		errorS: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:  r.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify prints a line about a request that is about to be sent.
func (c *Console) Notify(msg string) {
	fmt.Fprintf(c.out, "%s\n%s\n\n", c.notice.Render("Sending request:"), msg)
}

// Loaded announces that the model acknowledged the taxonomy.
func (c *Console) Loaded() {
	fmt.Fprintln(c.out, c.notice.Render("Prompt taxonomy system loaded"))
	fmt.Fprintln(c.out)
}

// Topic asks until a non-empty topic is entered.
func (c *Console) Topic(ctx context.Context) (string, error) {
	for {
		fmt.Fprint(c.out, c.prompt.Render("Please enter the initial topic:")+" ")
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		if line != "" {
			fmt.Fprintf(c.out, "Topic: %s\n", line)
			return line, nil
		}
		fmt.Fprintln(c.out, c.errorS.Render("The topic cannot be empty."))
	}
}

// Choose lists t's categories, then the chosen category's subcategories,
// and returns the pair picked by number.
func (c *Console) Choose(ctx context.Context, t taxonomy.Taxonomy) (string, string, error) {
	categories := t.Categories()
	if len(categories) == 0 {
		return "", "", errors.New("no categories to choose from")
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.prompt.Render("Please select a prompt category:"))
	for i, name := range categories {
		fmt.Fprintln(c.out, c.option.Render(fmt.Sprintf("%d: %s", i+1, name)))
	}
	fmt.Fprintln(c.out)
	n, err := c.pick(ctx, len(categories))
	if err != nil {
		return "", "", err
	}
	category := categories[n-1]
	fmt.Fprintf(c.out, " - Prompt category: %s\n\n", category)

	subs, _ := t.Subcategories(category)
	fmt.Fprintln(c.out, c.prompt.Render("Please select the subcategory:"))
	for i, s := range subs {
		fmt.Fprintf(c.out, "%s - %s\n", c.option.Render(fmt.Sprintf("%d: %s", i+1, s.Name)), s.Description)
	}
	fmt.Fprintln(c.out)
	n, err = c.pick(ctx, len(subs))
	if err != nil {
		return "", "", err
	}
	sub := subs[n-1]
	fmt.Fprintf(c.out, " - Prompt subcategory: %s\n", sub.Name)
	fmt.Fprintf(c.out, " - Desc: %s\n\n", sub.Description)
	return category, sub.Name, nil
}

// pick reads a 1-based choice in [1, n], re-prompting on bad input.
func (c *Console) pick(ctx context.Context, n int) (int, error) {
	for {
		fmt.Fprint(c.out, "Your choice: ")
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, c.errorS.Render("Invalid choice. Please choose a valid integer"))
			continue
		}
		if choice < 1 || choice > n {
			fmt.Fprintln(c.out, c.errorS.Render(fmt.Sprintf("Invalid choice. Please choose between 1 and %d", n)))
			continue
		}
		return choice, nil
	}
}

// readLine waits for the next line or for ctx to end. A read abandoned by
// cancellation stays pending and is handed to the next call, so no input
// is lost.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := c.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		c.pending = ch
	}

	var r readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-c.pending:
		c.pending = nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimSpace(r.line), nil
		}
		if errors.Is(r.err, io.EOF) {
			return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("read input: %w", r.err)
	}
	return strings.TrimSpace(r.line), nil
}

// Answer prints the final model answer, as markdown when enabled.
func (c *Console) Answer(answer string) {
	fmt.Fprintln(c.out, c.prompt.Render("Response:"))
	if c.renderer != nil {
		if out, err := c.renderer.Render(answer); err == nil {
			fmt.Fprint(c.out, out)
			return
		}
	}
	fmt.Fprintln(c.out, answer)
}

// Error prints a fatal session error.
func (c *Console) Error(err error) {
	fmt.Fprintln(c.out, c.errorS.Render("Error! "+err.Error()))
}

// Interrupted reports a session stopped by the user.
func (c *Console) Interrupted() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.muted.Render("Interrupted."))
}

// History prints stored interactions, oldest first.
func (c *Console) History(records []interaction.Record, offset int) {
	if len(records) == 0 {
		fmt.Fprintln(c.out, c.muted.Render("No interactions stored yet."))
		return
	}
	for i, r := range records {
		fmt.Fprintln(c.out, c.option.Render(fmt.Sprintf("#%d %s", offset+i+1, r.Topic)))
		fmt.Fprintf(c.out, "  %s / %s\n", r.Category, r.Subcategory)
		fmt.Fprintf(c.out, "  %s %s\n", c.muted.Render("prompt:"), oneLine(r.EnhancedPrompt, 100))
		fmt.Fprintf(c.out, "  %s %s\n", c.muted.Render("answer:"), oneLine(r.EnhancedAnswer, 100))
	}
}

func oneLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit-1]) + "…"
	}
	return s
}
