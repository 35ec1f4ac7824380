// Package csvcodec implements the CSV dialect the kiosk persists its data
// in. Encoding quotes any value containing a comma, double quote or
// newline and doubles embedded quotes. Decoding is deliberately lenient:
// it never returns an error — unparseable numerics coerce to zero, missing
// columns to the empty string, and product rows without a codigo are
// dropped. encoding/csv is too strict for this contract (it rejects bare
// quotes and unbalanced quoting that the original data contains).
package csvcodec

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KikePrograma-afk/Tukiosko/internal/model"
)

// Encode renders records as CSV text: a header row with the given field
// names followed by one row per record with values in field order.
func Encode(records []map[string]string, fields []string) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(fields, ","))
	for _, rec := range records {
		values := make([]string, len(fields))
		for i, f := range fields {
			values[i] = escape(rec[f])
		}
		lines = append(lines, strings.Join(values, ","))
	}
	return strings.Join(lines, "\n")
}

// escape quotes a value when it contains a comma, quote or newline,
// doubling every embedded quote.
func escape(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// scanRecords splits CSV text into records with a quote-toggle scanner.
// The scanner runs over the whole document, so a comma or newline inside
// quotes stays part of the field and a doubled quote inside a quoted field
// yields one literal quote. Blank lines are skipped.
func scanRecords(text string) [][]string {
	var records [][]string
	var fields []string
	var buf strings.Builder
	inQuotes := false

	endField := func() {
		fields = append(fields, buf.String())
		buf.Reset()
	}
	endRecord := func() {
		if len(fields) == 0 && strings.TrimSpace(buf.String()) == "" {
			buf.Reset()
			return
		}
		endField()
		records = append(records, fields)
		fields = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					buf.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				buf.WriteByte(c)
			}
		case c == '"':
			inQuotes = true
		case c == ',':
			endField()
		case c == '\n':
			endRecord()
		case c == '\r':
			// swallowed; CRLF ends the record at the '\n'
		default:
			buf.WriteByte(c)
		}
	}
	endRecord()
	return records
}

// DecodeProductos parses products CSV into a map keyed by codigo. Columns
// are mapped through the header row; rows with an empty codigo are
// skipped.
func DecodeProductos(text string) map[string]model.Producto {
	records := scanRecords(text)
	productos := make(map[string]model.Producto)
	if len(records) <= 1 {
		return productos
	}

	header := records[0]
	for _, row := range records[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		if rec["codigo"] == "" {
			continue
		}
		productos[rec["codigo"]] = model.Producto{
			Codigo:      rec["codigo"],
			Nombre:      rec["nombre"],
			Stock:       parseEntero(rec["stock"]),
			Precio:      parsePrecio(rec["precio"]),
			Categoria:   rec["categoria"],
			Imagen:      rec["imagen"],
			StockMinimo: parseEntero(rec["stockMinimo"]),
		}
	}
	return productos
}

// DecodeVentas parses sales CSV into the append-only sales log. Columns
// are positional in the persisted order.
func DecodeVentas(text string) []model.Venta {
	records := scanRecords(text)
	if len(records) <= 1 {
		return nil
	}

	ventas := make([]model.Venta, 0, len(records)-1)
	for _, row := range records[1:] {
		col := func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		}
		ventas = append(ventas, model.Venta{
			FechaHora:       col(0),
			CodigoBarra:     col(1),
			NombreProducto:  col(2),
			CantidadVendida: parseEntero(col(3)),
			Cajero:          col(4),
		})
	}
	return ventas
}

// parseEntero coerces a numeric string to int, tolerating decimal forms.
// Anything unparseable counts as 0.
func parseEntero(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// parsePrecio coerces a price string to decimal, defaulting to zero.
func parsePrecio(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
