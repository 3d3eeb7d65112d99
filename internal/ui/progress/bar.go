// Package progress shows batch progress on the terminal while commands run.
//
// The bar runs its own bubbletea program and never reads stdin, so spawned
// commands are unaffected. Lines printed through Println appear above it.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/cmdbatch/internal/ui/styles"
)

// progressUpdate is sent to update the progress bar
type progressUpdate struct {
	current int
	message string
}

// Bar wraps a bubbletea progress bar for simple non-interactive use.
// The total is the number of sections in the batch.
type Bar struct {
	out       io.Writer
	echo      io.Writer
	program   *tea.Program
	updateCh  chan progressUpdate
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	total     int
	current   int
	message   string
}

// barModel is the internal bubbletea model
type barModel struct {
	progress progress.Model
	total    int
	current  int
	message  string
	updateCh chan progressUpdate
}

func (m barModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m barModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updateCh
		if !ok {
			return tea.Quit()
		}
		return update
	}
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressUpdate:
		m.current = msg.current
		m.message = msg.message
		return m, m.waitForUpdate()
	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}
}

func (m barModel) View() tea.View {
	if m.message == "" {
		return tea.NewView("")
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
	}

	// Format: [████████░░░░░░░░] [3/7] section
	bar := m.progress.ViewAs(percent)
	return tea.NewView(fmt.Sprintf("%s %s", bar, m.message))
}

// New creates a progress bar for total sections drawn on out.
func New(out io.Writer, total int) *Bar {
	return &Bar{
		out:      out,
		updateCh: make(chan progressUpdate, 10),
		done:     make(chan struct{}),
		total:    total,
	}
}

// Start begins the progress bar display.
func (p *Bar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return
	}

	prog := progress.New(
		progress.WithWidth(30),
		progress.WithoutPercentage(),
		progress.WithColors(styles.Primary, styles.Success),
	)

	model := barModel{
		progress: prog,
		total:    p.total,
		current:  p.current,
		message:  p.message,
		updateCh: p.updateCh,
	}

	p.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(p.out),
	)
	p.isRunning = true

	go func() {
		_, _ = p.program.Run()
		close(p.done)
	}()
}

// Step marks section number index (zero based) as running.
func (p *Bar) Step(index int, section string) {
	p.set(index, fmt.Sprintf("[%d/%d] %s", index+1, p.total, section))
}

func (p *Bar) set(current int, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		p.current = current
		p.message = message
		return
	}

	// Drops the update when the channel is full; close happens under the same mutex.
	select {
	case p.updateCh <- progressUpdate{current: current, message: message}:
	default:
	}
}

// EchoTo sends Println lines to w instead of above the bar. Use it when the
// bar is drawn on a different stream than the lines belong to.
func (p *Bar) EchoTo(w io.Writer) *Bar {
	p.echo = w
	return p
}

// Println prints line above the bar, or directly when the bar is not running
// or lines are echoed elsewhere.
func (p *Bar) Println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.echo != nil {
		fmt.Fprintln(p.echo, line)
		return
	}
	if !p.isRunning || p.program == nil {
		fmt.Fprintln(p.out, line)
		return
	}
	p.program.Println(line)
}

// Stop stops the progress bar and clears the line.
func (p *Bar) Stop() {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = false
	close(p.updateCh)
	p.mu.Unlock()

	if p.program != nil {
		p.program.Quit()
	}

	select {
	case <-p.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(p.out, "\r\033[K")
}
