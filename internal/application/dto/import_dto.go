package dto

// ImportResult resultado de la importación masiva de teléfonos.
// Errors conserva la lista completa en orden ("<fila>. <mensaje>"); el
// truncado para presentación es responsabilidad del caller.
type ImportResult struct {
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}
