// Package report renders a run's events as line-oriented console output.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"retime/logger"
	"retime/shifter"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Console implements shifter.Observer. It writes the line protocol to
// stdout (start marker, one line per shifted file, end marker) and an
// indeterminate progress spinner to stderr when one is wanted.
type Console struct {
	out          io.Writer
	bar          *progressbar.ProgressBar
	showProgress bool
}

func NewConsole(noProgress bool) *Console {
	return &Console{
		out:          os.Stdout,
		showProgress: !noProgress && progressVisible(),
	}
}

func (c *Console) RunStarted(root string) {
	fmt.Fprintln(c.out, "processing files...")
	if c.showProgress {
		c.bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Shifting timestamps"),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionFullWidth(),
		)
	}
}

func (c *Console) FileShifted(a shifter.Action) {
	if c.bar != nil {
		_ = c.bar.Add(1)
	}
	if a.Err != nil {
		return
	}
	fmt.Fprintf(c.out, "file:%s,new_mtime:%s\n", a.Path, a.NewDate())
}

func (c *Console) RunCompleted(s shifter.Stats) {
	if c.bar != nil {
		_ = c.bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprintln(c.out, "done processing files...")
	logger.Infof("Shifted %d of %d files (%d failed)", s.FilesShifted, s.FilesScanned, s.FilesFailed)
}

func progressVisible() bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv("RETIME_DISABLE_PROGRESS")))
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
