package delivery

import "context"

// MessageSender puerto hacia el proveedor de mensajería externo.
// La notificación completa es una unidad atómica: un solo resultado
// binario por evento, no por teléfono.
type MessageSender interface {
	Send(ctx context.Context, phones []string, message string) error
}

// TabularWriter puerto del codec tabular para exportar el historial
// ("filas de campos con nombre hacia afuera").
type TabularWriter interface {
	Write(headers []string, rows [][]string) ([]byte, error)
}
