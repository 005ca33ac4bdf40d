package importer

import "io"

// TabularCodec puerto del codec de archivos tabulares: filas de campos con
// nombre hacia adentro (importación) y hacia afuera (plantilla).
type TabularCodec interface {
	// Parse devuelve encabezados y filas de datos.
	Parse(r io.Reader) (headers []string, rows [][]string, err error)
	Write(headers []string, rows [][]string) ([]byte, error)
}
