package delivery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdelivery "github.com/tu-usuario/portaria-pro/internal/application/delivery"
	"github.com/tu-usuario/portaria-pro/internal/application/dto"
	"github.com/tu-usuario/portaria-pro/internal/domain"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
)

// fakeWriter captura headers y filas sin serializar de verdad.
type fakeWriter struct {
	headers []string
	rows    [][]string
}

func (w *fakeWriter) Write(headers []string, rows [][]string) ([]byte, error) {
	w.headers = headers
	w.rows = rows
	return []byte("csv"), nil
}

// seedHistory puebla el historial con entregas conocidas y devuelve el caso de uso.
func seedHistory(t *testing.T) (*appdelivery.ReportUseCase, *fakeWriter) {
	t.Helper()
	repo := newFakeDeliveryRepo()
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	records := []*entity.DeliveryRecord{
		{ID: "d1", BuildingID: bldID, ApartmentNumber: "101", DoormanName: "João", Status: entity.DeliverySuccess, PhonesNotified: []string{"5511911111111", "5511922222222"}, CreatedAt: base},
		{ID: "d2", BuildingID: bldID, ApartmentNumber: "101", DoormanName: "João", Status: entity.DeliverySuccess, PhonesNotified: []string{"5511911111111"}, CreatedAt: base.Add(24 * time.Hour)},
		{ID: "d3", BuildingID: bldID, ApartmentNumber: "202", DoormanName: "Maria", Status: entity.DeliveryFailed, PhonesNotified: []string{}, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "d4", BuildingID: bldID, ApartmentNumber: "303", DoormanName: "Maria", Status: entity.DeliverySuccess, PhonesNotified: []string{"5511933333333"}, CreatedAt: base.Add(72 * time.Hour)},
		// Ruido de otro edificio: jamás debe aparecer.
		{ID: "dx", BuildingID: "otro", ApartmentNumber: "101", Status: entity.DeliverySuccess, PhonesNotified: []string{"x"}, CreatedAt: base},
	}
	for _, r := range records {
		require.NoError(t, repo.Append(r))
	}
	w := &fakeWriter{}
	return appdelivery.NewReportUseCase(repo, w), w
}

// ──────────────────────────────────────────────────────────────────────────────
// Query
// ──────────────────────────────────────────────────────────────────────────────

func TestReportQuery_SinFiltros_TodoElEdificioDescendente(t *testing.T) {
	uc, _ := seedHistory(t)

	out, err := uc.Query(bldID, dto.DeliveryQuery{})
	require.NoError(t, err)

	require.Len(t, out, 4, "solo entregas del edificio consultado")
	assert.Equal(t, "303", out[0].ApartmentNumber, "más recientes primero")
	assert.Equal(t, "101", out[3].ApartmentNumber)
}

func TestReportQuery_FiltroPorEstado(t *testing.T) {
	uc, _ := seedHistory(t)

	failed, err := uc.Query(bldID, dto.DeliveryQuery{Status: "failed"})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "202", failed[0].ApartmentNumber)
}

func TestReportQuery_FiltroPorApartamentoYFechas(t *testing.T) {
	uc, _ := seedHistory(t)

	// end_date inclusivo: el día completo de la entrega d2 entra.
	out, err := uc.Query(bldID, dto.DeliveryQuery{
		ApartmentNumber: "101",
		StartDate:       "2026-08-10",
		EndDate:         "2026-08-11",
	})
	require.NoError(t, err)
	assert.Len(t, out, 2, "ambas entregas del 101 caen en el rango inclusivo")
}

func TestReportQuery_FechaInvalida_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := seedHistory(t)

	_, err := uc.Query(bldID, dto.DeliveryQuery{StartDate: "10/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportQuery_EstadoInvalido_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := seedHistory(t)

	_, err := uc.Query(bldID, dto.DeliveryQuery{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestReportStats_AgregadosCoherentesConQuery(t *testing.T) {
	uc, _ := seedHistory(t)

	stats, err := uc.Stats(bldID, dto.DeliveryQuery{})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalDeliveries)
	assert.Equal(t, 3, stats.Successful)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 4, stats.TotalPhonesNotified, "suma de teléfonos notificados en todas las entregas")

	require.NotEmpty(t, stats.TopApartments)
	assert.Equal(t, "101", stats.TopApartments[0].ApartmentNumber, "el 101 lidera con 2 entregas")
	assert.Equal(t, 2, stats.TopApartments[0].Deliveries)
}

func TestReportStats_EmpateSeOrdenaPorNumero(t *testing.T) {
	uc, _ := seedHistory(t)

	stats, err := uc.Stats(bldID, dto.DeliveryQuery{})
	require.NoError(t, err)

	// 202 y 303 empatan con 1 entrega: el orden es por número ascendente.
	require.Len(t, stats.TopApartments, 3)
	assert.Equal(t, "202", stats.TopApartments[1].ApartmentNumber)
	assert.Equal(t, "303", stats.TopApartments[2].ApartmentNumber)
}

func TestReportStats_HistorialVacio(t *testing.T) {
	uc := appdelivery.NewReportUseCase(newFakeDeliveryRepo(), &fakeWriter{})

	stats, err := uc.Stats(bldID, dto.DeliveryQuery{})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalDeliveries)
	assert.NotNil(t, stats.TopApartments, "ranking vacío, nunca nil")
	assert.Empty(t, stats.TopApartments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestReportExportCSV_EncabezadosYFilas(t *testing.T) {
	uc, w := seedHistory(t)

	data, err := uc.ExportCSV(bldID, dto.DeliveryQuery{Status: "success"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.Equal(t, []string{"Data", "Apartamento", "Porteiro", "Status", "Telefones notificados"}, w.headers)
	require.Len(t, w.rows, 3)
	// Primera fila = entrega más reciente (303).
	assert.Equal(t, "303", w.rows[0][1])
	// Los teléfonos van unidos por espacio en una sola celda.
	assert.Equal(t, "5511911111111 5511922222222", w.rows[2][4])
}
