package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/dirmeta/internal/tui/components"
	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

// entryKind classifies a browser row.
type entryKind int

const (
	kindFolder entryKind = iota
	kindFile
	kindDrive
)

// entry is one row in the browser listing. For drives, name holds the full
// mount root; otherwise it is a child name under the current directory.
type entry struct {
	name dirmeta.Path
	kind entryKind
}

// entriesMsg delivers a finished directory load.
type entriesMsg struct {
	dir     dirmeta.Path
	entries []entry
	err     error
}

// metadataMsg delivers the metadata record for the selected entry.
type metadataMsg struct {
	target string
	record dirmeta.Metadata
}

// Browser is an interactive directory browser over the dirmeta core. An
// empty current path represents the drive level.
type Browser struct {
	current    dirmeta.Path
	entries    []entry
	cursor     int
	showHidden bool

	collector *dirmeta.Collector
	meta      dirmeta.Metadata
	metaFor   string

	loading bool
	spin    components.Spinner

	gotoActive bool
	gotoField  components.TextField
	completer  *components.PathCompleter

	errText string
	width   int
	height  int
	keys    KeyMap
}

// NewBrowser creates a browser rooted at the given start path. An empty
// start path opens at the drive level.
func NewBrowser(start dirmeta.Path, showHidden bool, collector *dirmeta.Collector) Browser {
	field := components.NewTextField("Go to:", "directory path")
	field = field.WithValidator(func(value string) error {
		if value != "" && !dirmeta.New(value).ValidDir() {
			return fmt.Errorf("not a directory")
		}
		return nil
	})

	return Browser{
		current:    start,
		showHidden: showHidden,
		collector:  collector,
		spin:       components.NewSpinner("listing..."),
		gotoField:  field,
		completer:  components.NewPathCompleter(showHidden),
		keys:       DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return tea.Batch(b.spin.Init(), loadEntries(b.current, b.showHidden))
}

// loadEntries lists a directory (or the drives, for the empty path) off the
// update loop.
func loadEntries(dir dirmeta.Path, showHidden bool) tea.Cmd {
	return func() tea.Msg {
		if dir.String() == "" {
			drives, err := dirmeta.Drives()
			if err != nil {
				return entriesMsg{dir: dir, err: err}
			}
			entries := make([]entry, 0, len(drives))
			for _, drive := range drives {
				entries = append(entries, entry{name: drive, kind: kindDrive})
			}
			return entriesMsg{dir: dir, entries: entries}
		}

		files, folders, err := dirmeta.FilesFolders(dir)
		if err != nil {
			return entriesMsg{dir: dir, err: err}
		}
		return entriesMsg{dir: dir, entries: buildEntries(files, folders, showHidden)}
	}
}

// buildEntries merges sorted folder and file names into browser rows,
// folders first, optionally dropping hidden entries.
func buildEntries(files, folders []dirmeta.Path, showHidden bool) []entry {
	entries := make([]entry, 0, len(files)+len(folders))
	for _, folder := range folders {
		if !showHidden && strings.HasPrefix(folder.String(), ".") {
			continue
		}
		entries = append(entries, entry{name: folder, kind: kindFolder})
	}
	for _, file := range files {
		if !showHidden && strings.HasPrefix(file.String(), ".") {
			continue
		}
		entries = append(entries, entry{name: file, kind: kindFile})
	}
	return entries
}

// selectedTarget returns the absolute path of the row under the cursor.
func (b Browser) selectedTarget() (dirmeta.Path, bool) {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return dirmeta.Path{}, false
	}
	selected := b.entries[b.cursor]
	if selected.kind == kindDrive {
		return selected.name, true
	}
	return b.current.Join(selected.name), true
}

// parentOf returns the parent directory, or the empty path once the
// filesystem root is crossed (the drive level).
func parentOf(dir dirmeta.Path) dirmeta.Path {
	parent := filepath.Dir(dir.String())
	if parent == dir.String() || parent == "." {
		return dirmeta.New("")
	}
	return dirmeta.New(parent)
}

func (b Browser) loadMetadata() tea.Cmd {
	target, ok := b.selectedTarget()
	if !ok {
		return nil
	}
	collector := b.collector
	return func() tea.Msg {
		return metadataMsg{target: target.String(), record: collector.FileMetadata(target)}
	}
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case entriesMsg:
		// Ignore loads for directories we already navigated away from.
		if msg.dir.String() != b.current.String() {
			return b, nil
		}
		b.loading = false
		if msg.err != nil {
			b.errText = msg.err.Error()
			b.entries = nil
			return b, nil
		}
		b.errText = ""
		b.entries = msg.entries
		b.cursor = 0
		b.meta = dirmeta.Metadata{}
		b.metaFor = ""
		return b, b.loadMetadata()

	case metadataMsg:
		if target, ok := b.selectedTarget(); ok && target.String() == msg.target {
			b.meta = msg.record
			b.metaFor = msg.target
		}
		return b, nil

	case tea.KeyMsg:
		if b.gotoActive {
			return b.updateGoTo(msg)
		}
		return b.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	b.spin, cmd = b.spin.Update(msg)
	return b, cmd
}

func (b Browser) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
		return b, b.loadMetadata()

	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.entries)-1 {
			b.cursor++
		}
		return b, b.loadMetadata()

	case key.Matches(msg, b.keys.Enter):
		target, ok := b.selectedTarget()
		if !ok {
			return b, nil
		}
		if b.entries[b.cursor].kind == kindFile {
			return b, nil
		}
		return b.navigateTo(target)

	case key.Matches(msg, b.keys.Parent):
		if b.current.String() == "" {
			return b, nil
		}
		return b.navigateTo(parentOf(b.current))

	case key.Matches(msg, b.keys.Hidden):
		b.showHidden = !b.showHidden
		b.completer.SetShowHidden(b.showHidden)
		return b.navigateTo(b.current)

	case key.Matches(msg, b.keys.GoTo):
		b.gotoActive = true
		b.gotoField.SetValue(b.current.String())
		return b, b.gotoField.Focus()
	}

	return b, nil
}

func (b Browser) updateGoTo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.gotoActive = false
		b.gotoField.Blur()
		return b, nil

	case "tab":
		b.gotoField.SetValue(b.completer.Next(b.gotoField.Value()))
		return b, nil

	case "enter":
		fixed, err := dirmeta.FixPath(dirmeta.New(b.gotoField.Value()))
		if err != nil {
			b.errText = err.Error()
			return b, nil
		}
		b.gotoActive = false
		b.gotoField.Blur()
		return b.navigateTo(fixed)
	}

	b.completer.Reset()
	var cmd tea.Cmd
	b.gotoField, cmd = b.gotoField.Update(msg)
	return b, cmd
}

func (b Browser) navigateTo(target dirmeta.Path) (tea.Model, tea.Cmd) {
	b.current = target
	b.loading = true
	b.errText = ""
	b.spin.SetMessage("listing " + displayName(target) + "...")
	return b, tea.Batch(b.spin.Init(), loadEntries(target, b.showHidden))
}

func displayName(dir dirmeta.Path) string {
	if dir.String() == "" {
		return "drives"
	}
	return dir.String()
}

// View implements tea.Model.
func (b Browser) View() string {
	var builder strings.Builder

	title := b.current.String()
	if title == "" {
		title = "Drives"
	}
	builder.WriteString(TitleStyle.Render(title))
	builder.WriteString("\n")

	if b.loading {
		builder.WriteString(b.spin.View())
		builder.WriteString("\n")
	} else if b.errText != "" {
		builder.WriteString(ErrorStyle.Render(SymbolCross + " " + b.errText))
		builder.WriteString("\n")
	} else if len(b.entries) == 0 {
		builder.WriteString(HelpStyle.Render("(empty)"))
		builder.WriteString("\n")
	} else {
		builder.WriteString(b.viewEntries())
	}

	if b.gotoActive {
		builder.WriteString("\n")
		builder.WriteString(b.gotoField.View())
		builder.WriteString("\n")
	} else if !b.loading && b.errText == "" {
		builder.WriteString(b.viewMetadata())
	}

	builder.WriteString("\n")
	builder.WriteString(HelpStyle.Render(b.keys.HelpText()))
	return builder.String()
}

// visibleRows caps the listing to the terminal height, keeping the cursor
// in view.
func (b Browser) visibleRows() (start, end int) {
	rows := b.height - 10
	if rows < 5 {
		rows = 5
	}
	if len(b.entries) <= rows {
		return 0, len(b.entries)
	}
	start = b.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end = start + rows
	if end > len(b.entries) {
		end = len(b.entries)
		start = end - rows
	}
	return start, end
}

func (b Browser) viewEntries() string {
	var builder strings.Builder
	start, end := b.visibleRows()

	for i := start; i < end; i++ {
		row := b.entries[i]

		var symbol string
		var style lipgloss.Style
		switch row.kind {
		case kindDrive:
			symbol, style = SymbolDrive, FolderStyle
		case kindFolder:
			symbol, style = SymbolFolder, FolderStyle
		default:
			symbol, style = SymbolFile, FileStyle
		}

		line := symbol + " " + row.name.String()
		if i == b.cursor {
			builder.WriteString(SelectedStyle.Render(line))
		} else {
			builder.WriteString(style.Render(line))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func (b Browser) viewMetadata() string {
	target, ok := b.selectedTarget()
	if !ok || b.metaFor != target.String() {
		return ""
	}

	if b.meta.Failed() {
		return PaneStyle.Render(ErrorStyle.Render(b.meta.Err))
	}

	var lines []string
	pair := func(label, value string) string {
		return MetaLabelStyle.Render(label+": ") + MetaValueStyle.Render(value)
	}
	lines = append(lines, pair("Owner", b.meta.Owner))
	lines = append(lines, pair("Modified", b.meta.LastModified.Format("2006-01-02 15:04:05")))
	if b.meta.FileSize != "" {
		lines = append(lines, pair("Size", b.meta.FileSize))
	}
	item := b.meta.Item
	if item == "" {
		item = "(no extension)"
	}
	lines = append(lines, pair("Item", item))

	return PaneStyle.Render(strings.Join(lines, "\n"))
}

// Run starts the browser program and blocks until the user quits.
func Run(browser Browser) error {
	program := tea.NewProgram(browser, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
