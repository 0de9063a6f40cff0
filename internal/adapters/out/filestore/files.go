package filestore

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const (
	ordersTitle = "3D print shop orders"
	queueTitle  = "3D print shop print queue (one order id per line, head first)"

	headerFormat    = "format"
	headerFields    = "fields"
	headerGenerated = "generated"
	headerSnapshot  = "snapshot"

	maxLineBytes = 1 << 20
)

// Header is the metadata carried by the comment lines of a file.
type Header struct {
	Version     FormatVersion
	GeneratedAt time.Time
	SnapshotID  uuid.UUID
}

// LineError records a skipped line.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func writeHeader(w *bufio.Writer, title string, h Header, fields string) {
	fmt.Fprintf(w, "# %s\n", title)
	fmt.Fprintf(w, "# %s: %s\n", headerFormat, h.Version)
	if fields != "" {
		fmt.Fprintf(w, "# %s: %s\n", headerFields, fields)
	}
	fmt.Fprintf(w, "# %s: %s\n", headerGenerated, h.GeneratedAt.UTC().Format(time.RFC3339))
	if h.SnapshotID != uuid.Nil {
		fmt.Fprintf(w, "# %s: %s\n", headerSnapshot, h.SnapshotID)
	}
	w.WriteString("\n")
}

// readHeaderLine folds a "# key: value" comment into h. Unknown or malformed
// comments are ignored; an unsupported format version is an error.
func readHeaderLine(line string, h *Header) error {
	key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(key)) {
	case headerFormat:
		// Legacy files use "# Format: orderId|username|..." as a description.
		if _, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(value), "v")); err != nil {
			return nil
		}
		v, err := ParseFormatVersion(value)
		if err != nil {
			return err
		}
		h.Version = v
	case headerGenerated:
		if ts, err := time.Parse(time.RFC3339, value); err == nil {
			h.GeneratedAt = ts
		}
	case headerSnapshot:
		if id, err := uuid.Parse(value); err == nil {
			h.SnapshotID = id
		}
	}
	return nil
}

// WriteOrders writes the header and one line per order using the codec's version.
func (c Codec) WriteOrders(w io.Writer, orders []*order.Order, h Header) error {
	h.Version = c.version
	bw := bufio.NewWriter(w)
	writeHeader(bw, ordersTitle, h, FieldNames)
	for _, o := range orders {
		bw.WriteString(c.EncodeOrder(o))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// OrdersResult is what ReadOrders recovered from a file.
type OrdersResult struct {
	Header  Header
	Orders  []*order.Order
	Skipped []LineError
}

// ReadOrders decodes every order line, skipping malformed ones. The escaping
// version comes from the file header, defaulting to v1; the codec's own
// version is ignored. Only I/O failures and unsupported versions are errors.
func (c Codec) ReadOrders(r io.Reader) (OrdersResult, error) {
	result := OrdersResult{Header: Header{Version: FormatV1}}
	decoder := c
	decoder.version = FormatV1

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if err := readHeaderLine(trimmed, &result.Header); err != nil {
				return result, err
			}
			decoder.version = result.Header.Version
			continue
		}

		o, err := decoder.DecodeOrder(line)
		if err != nil {
			result.Skipped = append(result.Skipped, LineError{Line: lineNo, Err: err})
			continue
		}
		result.Orders = append(result.Orders, o)
	}

	return result, sc.Err()
}

// WriteQueue writes the queue as one order ID per line, head first.
func WriteQueue(w io.Writer, ids []order.ID, h Header) error {
	h.Version = CurrentFormat
	bw := bufio.NewWriter(w)
	writeHeader(bw, queueTitle, h, "")
	for _, id := range ids {
		bw.WriteString(id.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// QueueResult is what ReadQueue recovered from a file.
type QueueResult struct {
	Header  Header
	IDs     []order.ID
	Skipped []LineError
}

// ReadQueue parses a queue file, skipping lines that are not order IDs.
func ReadQueue(r io.Reader) (QueueResult, error) {
	result := QueueResult{Header: Header{Version: FormatV1}}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		trimmed := strings.TrimSpace(sc.Text())

		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if err := readHeaderLine(trimmed, &result.Header); err != nil {
				return result, err
			}
			continue
		}

		id, err := order.ParseID(trimmed)
		if err != nil {
			result.Skipped = append(result.Skipped, LineError{Line: lineNo, Err: err})
			continue
		}
		result.IDs = append(result.IDs, id)
	}

	return result, sc.Err()
}
