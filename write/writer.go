package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// WriteSettings selects where the per-iteration trace of an optimizer goes.
// The zero value writes nothing.
type WriteSettings struct {
	DisplayWriters []Writer    // Where should the display be written. This can be set to nil to avoid all display
	Zap            *zap.Logger // If set, every iteration is logged at debug level
}

// DefaultWriteSettings returns settings with no writers, so optimizers have
// no side effects unless asked for a trace.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the optimization run
	// for future postprocessing. The data is saved as a csv and a row is
	// written every iteration of the optimizer
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the optimization
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display gathers values from its DataAdders and writes them to the
// configured writers. Headings are fixed at Init.
type Display struct {
	title      string
	values     []*Value
	headings   []string
	maxLengths []int

	rowsSinceHeading int
	lastDisplay      time.Time

	writers []Writer
	csvs    []*csv.Writer // parallel to writers, nil for displayers
	zap     *zap.Logger

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

func (d *Display) accumulate() {
	d.values = d.values[:0]
	for _, add := range d.dataAdders {
		d.values = add.AppendWriteData(d.values)
	}
}

func (d *Display) active() bool {
	return len(d.writers) != 0 || d.zap != nil
}

// Init prepares the writers for a new run. title is written ahead of the
// headings of every writer.
func (d *Display) Init(ws *WriteSettings, title string) error {
	d.title = title
	d.writers = ws.DisplayWriters
	d.zap = ws.Zap
	d.csvs = d.csvs[:0]
	// show headings and values on the first iteration
	d.rowsSinceHeading = headingInterval + 1
	d.lastDisplay = time.Now().Add(-valueInterval)

	if !d.active() {
		return nil
	}
	d.accumulate()
	d.headings = d.headings[:0]
	for _, v := range d.values {
		d.headings = append(d.headings, v.Heading)
	}

	for _, w := range d.writers {
		var cw *csv.Writer
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			cw = csv.NewWriter(w)
			if err := cw.Write(d.headings); err != nil {
				return err
			}
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
		case Displayer:
			if _, err := fmt.Fprintf(w, "%s\n\n", title); err != nil {
				return err
			}
		}
		d.csvs = append(d.csvs, cw)
	}
	if d.zap != nil {
		d.zap.Debug("optimization started", zap.String("stage", title))
	}
	return nil
}

// Iterate writes the current values to every writer: a row for each
// logger, a throttled aligned line for each displayer, and a debug entry
// for the zap logger.
func (d *Display) Iterate() error {
	if !d.active() {
		return nil
	}
	d.accumulate()

	if d.zap != nil {
		fields := make([]zap.Field, 0, len(d.values)+1)
		fields = append(fields, zap.String("stage", d.title))
		for _, v := range d.values {
			fields = append(fields, zap.Any(v.Heading, v.Value))
		}
		d.zap.Debug("iteration", fields...)
	}

	showValues := time.Since(d.lastDisplay) > valueInterval
	var showHeadings bool
	if showValues {
		d.lastDisplay = time.Now()
		d.rowsSinceHeading++
		showHeadings = d.rowsSinceHeading > headingInterval
		if showHeadings {
			d.rowsSinceHeading = 0
		}
	}

	row := make([]string, len(d.values))
	for i, v := range d.values {
		row[i] = csvString(v.Value)
	}

	var display []string
	for i, w := range d.writers {
		switch w.T {
		case Logger:
			cw := d.csvs[i]
			if err := cw.Write(row); err != nil {
				return err
			}
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
		case Displayer:
			if !showValues {
				continue
			}
			if display == nil {
				display = make([]string, len(d.values))
				for j, v := range d.values {
					display[j] = displayString(v.Value)
				}
				d.alignTo(display)
			}
			if showHeadings {
				if err := writeAligned(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if err := writeAligned(w, display, d.maxLengths); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Display) alignTo(values []string) {
	d.maxLengths = d.maxLengths[:0]
	for i, v := range values {
		n := len(v)
		if len(d.headings[i]) > n {
			n = len(d.headings[i])
		}
		d.maxLengths = append(d.maxLengths, n)
	}
}

func writeAligned(w io.Writer, strs []string, maxLengths []int) error {
	var sb strings.Builder
	for i, str := range strs {
		sb.WriteString(str)
		sb.WriteString(strings.Repeat(" ", maxLengths[i]-len(str)))
		sb.WriteByte('\t')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// csvString keeps floats at full precision so the trace can be replayed.
func csvString(v interface{}) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func displayString(v interface{}) string {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
