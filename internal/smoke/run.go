package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	ok   = color.New(color.FgGreen)
	fail = color.New(color.FgRed)
	info = color.New(color.FgCyan)
)

// ErrFailed is returned by Run after a failing check has been reported.
var ErrFailed = errors.New("smoke test failed")

// Run checks /health and, when pdfPath is set, uploads that file as
// "test.pdf" to /parse. Progress goes to out.
func Run(ctx context.Context, c *Client, out io.Writer, pdfPath string) error {
	fmt.Fprintf(out, "Testing PDF Parser Service\n%s\n", strings.Repeat("=", 50))

	health, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(out, "Health check: %v\n", err)
		fail.Fprintln(out, "✗ Health check failed!")
		return ErrFailed
	}
	fmt.Fprintf(out, "Health check: status=%s service=%s\n", health.Status, health.Service)
	ok.Fprintln(out, "✓ Health check passed")

	if pdfPath == "" {
		info.Fprintln(out, "\nSkipping PDF test (no file provided)")
		fmt.Fprintln(out, "Usage: pdfparser-smoke <path-to-pdf>")
		ok.Fprintln(out, "\n✓ All tests passed!")
		return nil
	}

	fmt.Fprintf(out, "\nTesting with PDF: %s\n", pdfPath)
	f, err := os.Open(pdfPath)
	if err != nil {
		fail.Fprintf(out, "✗ Cannot open %s: %v\n", pdfPath, err)
		return ErrFailed
	}
	defer f.Close()

	res, err := c.Parse(ctx, "test.pdf", f)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fail.Fprintln(out, "\n✗ PDF parsing failed")
		return ErrFailed
	}

	fmt.Fprintf(out, "Pages: %d\n", res.Metadata.Pages)
	fmt.Fprintf(out, "Text length: %d characters\n", len(res.Text))
	fmt.Fprintf(out, "\nFirst 200 characters:\n%s...\n", head(res.Text, 200))
	ok.Fprintln(out, "\n✓ PDF parsing passed")
	ok.Fprintln(out, "\n✓ All tests passed!")
	return nil
}

func head(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
