package auth

import (
	"fmt"
	"io"

	"github.com/bnema/awards-vote-cli/internal/ports"
	"github.com/pkg/browser"
)

// BrowserNavigator prints the login URL and hands it to the system browser.
type BrowserNavigator struct {
	out  io.Writer
	open func(string) error
}

var _ ports.Navigator = (*BrowserNavigator)(nil)

func NewBrowserNavigator(out io.Writer) *BrowserNavigator {
	return NewNavigator(out, browser.OpenURL)
}

// NewNavigator uses open instead of the system browser. A nil open only prints.
func NewNavigator(out io.Writer, open func(string) error) *BrowserNavigator {
	return &BrowserNavigator{out: out, open: open}
}

// Open never fails because the browser is unavailable; the printed URL is enough.
func (n *BrowserNavigator) Open(url string) error {
	if _, err := fmt.Fprintf(n.out, "Opening the login page in your browser:\n%s\n", url); err != nil {
		return err
	}
	if n.open == nil {
		return nil
	}
	if err := n.open(url); err != nil {
		_, _ = fmt.Fprintln(n.out, "Could not open a browser, open the URL above manually.")
	}
	return nil
}
