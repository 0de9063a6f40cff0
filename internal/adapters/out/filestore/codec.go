// Package filestore persists the order registry and the print queue as
// line-oriented text files.
//
// orders.txt holds one pipe-delimited order per line:
//
//	orderId|username|email|role|materialName|costPerGram|printTemp|color|dimensions|quantity|specialInstructions|status|priority|estimatedPrintHours
//
// order_queue.txt holds one order ID per line, head of the queue first.
// Lines starting with '#' and blank lines are ignored in both files.
//
// Two escaping versions exist. v1, the legacy format, escapes '|', LF and CR
// as \|, \n and \r but leaves backslashes alone, so a literal `\|` in the
// original text cannot be told apart from an escaped pipe. v2 also escapes the
// backslash itself (\\) and round-trips every string. Files are written as v2
// and announce it with a "# format: v2" header; files without that header are
// read as v1.
package filestore

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// FormatVersion selects the escaping rules of a file.
type FormatVersion int

const (
	FormatV1 FormatVersion = 1
	FormatV2 FormatVersion = 2

	CurrentFormat = FormatV2
)

const (
	fieldSeparator = '|'
	escapeChar     = '\\'
	fieldCount     = 14
)

// FieldNames is written into the orders.txt header.
const FieldNames = "orderId|username|email|role|materialName|costPerGram|printTemp|color|" +
	"dimensions|quantity|specialInstructions|status|priority|estimatedPrintHours"

func (v FormatVersion) String() string {
	return "v" + strconv.Itoa(int(v))
}

// ParseFormatVersion reads "v1", "v2", "1" or "2".
func ParseFormatVersion(raw string) (FormatVersion, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "v"))
	if err != nil {
		return 0, errs.NewVersionIsInvalidErrorWithCause("format", fmt.Errorf("%q is not a version", raw))
	}
	v := FormatVersion(n)
	if err = v.Validate(); err != nil {
		return 0, err
	}
	return v, nil
}

func (v FormatVersion) Validate() error {
	if v != FormatV1 && v != FormatV2 {
		return errs.NewVersionIsInvalidErrorWithCause("format", fmt.Errorf("%d is not supported", int(v)))
	}
	return nil
}

// HoursEstimator fills in print hours for records that do not carry them.
type HoursEstimator interface {
	EstimateHours(dimensions string, quantity int) float64
}

// Codec converts orders to and from single lines.
type Codec struct {
	version   FormatVersion
	estimator HoursEstimator
}

// NewCodec returns a codec for the given version. The estimator may be nil, in
// which case records without print hours restore with zero hours.
func NewCodec(version FormatVersion, estimator HoursEstimator) (Codec, error) {
	if err := version.Validate(); err != nil {
		return Codec{}, err
	}
	return Codec{version: version, estimator: estimator}, nil
}

func (c Codec) Version() FormatVersion {
	return c.version
}

// WithVersion returns a copy of the codec using another escaping version.
func (c Codec) WithVersion(version FormatVersion) (Codec, error) {
	return NewCodec(version, c.estimator)
}

// Escape applies the codec's escaping to one field.
func (c Codec) Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case escapeChar:
			if c.version >= FormatV2 {
				b.WriteString(`\\`)
			} else {
				b.WriteByte(ch)
			}
		case fieldSeparator:
			b.WriteString(`\|`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// Unescape reverses Escape. Unknown escape sequences are kept verbatim.
func (c Codec) Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != escapeChar || i+1 == len(s) {
			b.WriteByte(ch)
			continue
		}

		switch next := s[i+1]; {
		case next == fieldSeparator:
			b.WriteByte(fieldSeparator)
		case next == 'n':
			b.WriteByte('\n')
		case next == 'r':
			b.WriteByte('\r')
		case next == escapeChar && c.version >= FormatV2:
			b.WriteByte(escapeChar)
		default:
			b.WriteByte(ch)
			continue
		}
		i++
	}
	return b.String()
}

// split cuts a line on separators that are not escaped. Fields are returned still escaped.
func (c Codec) split(line string) []string {
	fields := make([]string, 0, fieldCount)
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case escapeChar:
			if i+1 < len(line) && (c.version >= FormatV2 || line[i+1] == fieldSeparator) {
				i++
			}
		case fieldSeparator:
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// EncodeOrder renders one order as a line without a trailing newline.
func (c Codec) EncodeOrder(o *order.Order) string {
	user := o.User()
	material := o.Material()

	var cost, temp string
	if !material.IsZero() {
		cost = material.CostPerGram().String()
		temp = strconv.Itoa(material.PrintTemp())
	}

	fields := []string{
		o.ID().String(),
		c.Escape(user.Username()),
		c.Escape(user.Email()),
		c.Escape(user.Role()),
		c.Escape(material.Name()),
		cost,
		temp,
		c.Escape(material.Color()),
		c.Escape(o.Dimensions()),
		strconv.Itoa(o.Quantity()),
		c.Escape(o.SpecialInstructions()),
		o.Status().String(),
		o.Priority().String(),
		strconv.FormatFloat(o.EstimatedPrintHours(), 'f', -1, 64),
	}
	return strings.Join(fields, string(fieldSeparator))
}

// DecodeOrder parses a line produced by EncodeOrder. Lines without the
// trailing estimatedPrintHours field are accepted and the hours recomputed.
func (c Codec) DecodeOrder(line string) (*order.Order, error) {
	raw := c.split(line)
	if len(raw) == fieldCount-1 {
		// Older writers did not persist print hours.
		raw = append(raw, "")
	}
	if len(raw) != fieldCount {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order line",
			fmt.Errorf("%d fields, want %d", len(raw), fieldCount),
		)
	}

	f := make([]string, len(raw))
	for i, field := range raw {
		f[i] = c.Unescape(field)
	}

	id, err := order.ParseID(strings.TrimSpace(f[0]))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	material, err := decodeMaterial(f[4], f[5], f[6], f[7])
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(f[9]))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}

	status, err := order.ParseStatus(f[11])
	if err != nil {
		return nil, err
	}

	priority := order.Normal
	if strings.TrimSpace(f[12]) != "" {
		if priority, err = order.ParsePriority(f[12]); err != nil {
			return nil, err
		}
	}

	dimensions := f[8]
	hours, ok := parseHours(f[13])
	if !ok {
		hours = 0
		if c.estimator != nil {
			hours = c.estimator.EstimateHours(dimensions, quantity)
		}
	}

	return order.RestoreOrder(
		id,
		order.NewUserSnapshot(f[1], f[2], f[3]),
		material,
		dimensions,
		quantity,
		f[10],
		status,
		priority,
		hours,
	)
}

func decodeMaterial(name, cost, temp, color string) (order.MaterialSnapshot, error) {
	if name == "" && cost == "" && temp == "" && color == "" {
		return order.MaterialSnapshot{}, nil
	}

	costPerGram := decimal.Zero
	if strings.TrimSpace(cost) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(cost))
		if err != nil {
			return order.MaterialSnapshot{}, errs.NewValueIsInvalidErrorWithCause("costPerGram", err)
		}
		costPerGram = parsed
	}

	printTemp := 0
	if strings.TrimSpace(temp) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(temp))
		if err != nil {
			return order.MaterialSnapshot{}, errs.NewValueIsInvalidErrorWithCause("printTemp", err)
		}
		printTemp = parsed
	}

	return order.NewMaterialSnapshot(name, costPerGram, printTemp, color), nil
}

// parseHours reports false for values that must be recomputed.
func parseHours(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
