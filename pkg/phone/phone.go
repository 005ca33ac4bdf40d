// Package phone normaliza números de WhatsApp brasileños.
// Formato de entrada aceptado: "(11) 91111-1111", "11911111111",
// "+55 11 91111-1111", etc. Salida: solo dígitos con DDI, sin '+'.
package phone

import (
	"fmt"
	"strings"
	"unicode"
)

// CountryCode DDI de Brasil, prefijado cuando el número viene sin él.
const CountryCode = "55"

// Normalize elimina puntuación y valida la forma del número: 10 u 11 dígitos
// (DDD + número) con DDI 55 opcional. Devuelve los dígitos con DDI.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("teléfono vacío")
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	digits = strings.TrimLeft(digits, "0")

	// Con DDI: 55 + 10/11 dígitos.
	if strings.HasPrefix(digits, CountryCode) && (len(digits) == 12 || len(digits) == 13) {
		return digits, nil
	}
	// Sin DDI: DDD + número.
	if len(digits) == 10 || len(digits) == 11 {
		return CountryCode + digits, nil
	}
	return "", fmt.Errorf("teléfono inválido: se esperan 10 u 11 dígitos (DDD + número), recibidos %d", len(digits))
}

// Format presenta un número normalizado como "(DD) DDDDD-DDDD" para la UI.
// Si el número no tiene la forma esperada lo devuelve tal cual.
func Format(normalized string) string {
	digits := strings.TrimPrefix(normalized, CountryCode)
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return normalized
	}
}
