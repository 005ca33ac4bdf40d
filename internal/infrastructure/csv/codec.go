// Package csvcodec implementa el codec tabular (CSV) para importación,
// exportación y plantillas.
package csvcodec

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tu-usuario/portaria-pro/internal/application/delivery"
	"github.com/tu-usuario/portaria-pro/internal/application/importer"
)

var (
	_ importer.TabularCodec  = (*Codec)(nil)
	_ delivery.TabularWriter = (*Codec)(nil)
)

// Codec parse/serialize de archivos delimitados. Tolerante con archivos
// reales exportados de planillas: BOM UTF-8, comillas laxas, cantidad
// variable de campos por fila.
type Codec struct{}

// NewCodec construye el codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse lee encabezados y filas de datos. Descarta el BOM UTF-8 si existe.
func (c *Codec) Parse(r io.Reader) ([]string, [][]string, error) {
	br := bufio.NewReader(r)

	// UTF-8 BOM: 0xEF, 0xBB, 0xBF
	head, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("leer archivo: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // permitir cantidad variable de campos

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("archivo vacío")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("leer encabezado: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("leer fila %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}
	return headers, rows, nil
}

// Write serializa encabezados y filas como CSV en memoria.
func (c *Codec) Write(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
