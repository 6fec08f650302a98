package xmlwriter

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math/big"
	"time"

	"cloud.google.com/go/civil"
)

// Writer streams rows as a flat XML document:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<Root>
//	  <Element>
//	    <Col>value</Col>
//	  </Element>
//	</Root>
//
// Column order is fixed up front so every element serializes the same way.
type Writer struct {
	w       *bufio.Writer
	root    string
	element string
	columns []string
	started bool
	closed  bool
}

func New(w io.Writer, root, element string, columns []string) *Writer {
	return &Writer{
		w:       bufio.NewWriter(w),
		root:    root,
		element: element,
		columns: columns,
	}
}

func (x *Writer) start() error {
	if x.started {
		return nil
	}

	x.started = true
	if _, err := x.w.WriteString(xml.Header); err != nil {
		return err
	}

	_, err := fmt.Fprintf(x.w, "<%s>\n", x.root)
	return err
}

func (x *Writer) WriteRow(row map[string]any) error {
	if err := x.start(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(x.w, "  <%s>\n", x.element); err != nil {
		return err
	}

	for _, col := range x.columns {
		if _, err := fmt.Fprintf(x.w, "    <%s>", col); err != nil {
			return err
		}

		if err := xml.EscapeText(x.w, []byte(formatValue(row[col]))); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(x.w, "</%s>\n", col); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(x.w, "  </%s>\n", x.element)
	return err
}

// Close writes the closing root tag and flushes. It does not close the
// underlying writer.
func (x *Writer) Close() error {
	if x.closed {
		return nil
	}

	x.closed = true
	if err := x.start(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(x.w, "</%s>\n", x.root); err != nil {
		return err
	}

	return x.w.Flush()
}

func formatValue(value any) string {
	switch convertedVal := value.(type) {
	case nil:
		return ""
	case time.Time:
		return convertedVal.UTC().Format(time.RFC3339)
	case civil.Date:
		return convertedVal.String()
	case civil.DateTime:
		return convertedVal.String()
	case civil.Time:
		return convertedVal.String()
	case *big.Rat:
		return convertedVal.FloatString(2)
	case []byte:
		return string(convertedVal)
	default:
		return fmt.Sprint(convertedVal)
	}
}
