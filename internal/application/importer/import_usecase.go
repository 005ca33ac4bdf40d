// Package importer implementa la importación masiva de teléfonos desde un
// archivo tabular, con semántica de éxito parcial: una fila mala nunca
// aborta el lote.
package importer

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
	"github.com/tu-usuario/portaria-pro/internal/domain/repository"
	"github.com/tu-usuario/portaria-pro/pkg/phone"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Alias reconocidos por campo lógico, ya normalizados (minúsculas, sin acentos).
// Los archivos reales vienen de planillas en portugués con encabezados variados.
var (
	apartmentAliases = []string{"numero do conjunto", "conjunto", "apartamento", "apto", "unidade"}
	phoneAliases     = []string{"telefone", "whatsapp", "celular", "numero"}
	nameAliases      = []string{"nome", "morador", "responsavel"}
)

// Encabezados canónicos de la plantilla descargable.
var templateHeaders = []string{"Número do Conjunto", "Telefone", "Nome"}

// ImportUseCase validación e inserción fila a fila de teléfonos.
type ImportUseCase struct {
	apartmentRepo repository.ApartmentRepository
	phoneRepo     repository.PhoneRepository
	codec         TabularCodec
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(apartmentRepo repository.ApartmentRepository, phoneRepo repository.PhoneRepository, codec TabularCodec) *ImportUseCase {
	return &ImportUseCase{apartmentRepo: apartmentRepo, phoneRepo: phoneRepo, codec: codec}
}

// normalizeHeader minúsculas y sin diacríticos, para comparar encabezados
// ("Número" == "numero" == "NÚMERO").
func normalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// findColumn devuelve el índice de la primera columna cuyo encabezado
// normalizado coincide con algún alias, o -1.
func findColumn(headers []string, aliases []string) int {
	for i, h := range headers {
		n := normalizeHeader(h)
		for _, a := range aliases {
			if n == a {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Import procesa el archivo fila a fila. Las filas válidas se insertan como
// PhoneRegistration; las inválidas generan un error "<fila>. <mensaje>" con
// número de fila de datos 1-based. Los duplicados (mismo apartamento+teléfono)
// pasan sin deduplicar: comportamiento laxo conocido, no corregirlo en silencio.
func (uc *ImportUseCase) Import(buildingID string, r io.Reader) (*dto.ImportResult, error) {
	headers, rows, err := uc.codec.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	aptCol := findColumn(headers, apartmentAliases)
	phoneCol := findColumn(headers, phoneAliases)
	nameCol := findColumn(headers, nameAliases)
	if aptCol < 0 || phoneCol < 0 {
		return nil, fmt.Errorf("%w: el archivo debe tener columnas de apartamento y teléfono", domain.ErrInvalidInput)
	}

	// Resolver apartamentos una sola vez; ante números duplicados gana el
	// más antiguo (el listado viene ordenado por creación).
	apartments, err := uc.apartmentRepo.ListByBuilding(buildingID)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[string]*entity.Apartment, len(apartments))
	for _, a := range apartments {
		if _, ok := byNumber[a.Number]; !ok {
			byNumber[a.Number] = a
		}
	}

	result := &dto.ImportResult{Errors: []string{}}
	for i, row := range rows {
		rowNum := i + 1 // fila de datos 1-based (sin contar encabezado)

		number := cell(row, aptCol)
		apt, ok := byNumber[number]
		if number == "" || !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("%d. apartamento no encontrado", rowNum))
			continue
		}

		normalized, err := phone.Normalize(cell(row, phoneCol))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%d. %v", rowNum, err))
			continue
		}

		p := &entity.PhoneRegistration{
			ID:          uuid.New().String(),
			ApartmentID: apt.ID,
			WhatsApp:    normalized,
			Name:        cell(row, nameCol),
			CreatedAt:   time.Now(),
		}
		if err := uc.phoneRepo.Create(p); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%d. no se pudo guardar el teléfono", rowNum))
			continue
		}
		result.ImportedCount++
	}
	return result, nil
}

// GenerateTemplate archivo de ejemplo mínimo con los encabezados reconocidos
// y una fila de muestra. Puramente informativo, no se valida.
func (uc *ImportUseCase) GenerateTemplate() ([]byte, error) {
	sample := [][]string{{"101", "(11) 91111-1111", "Maria"}}
	return uc.codec.Write(templateHeaders, sample)
}
