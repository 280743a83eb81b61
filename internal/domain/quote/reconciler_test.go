package quote_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/quote"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// seqID devuelve un generador determinista de IDs para los tests
// (en producción el caller pasa uuid.NewString).
func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("loc-%d", n)
	}
}

func testCatalog() quote.Catalog {
	return quote.NewCatalog([]*entity.CatalogProduct{
		{ID: "p-sound", Code: "ST-01", Name: "Soundtrack Player", Platform: entity.PlatformSoundtrack},
		{ID: "p-beat", Code: "BB-01", Name: "Beatbreeze Player", Platform: entity.PlatformBeatbreeze},
		{ID: "p-install", Code: "SRV-01", Name: "Instalación", Platform: entity.PlatformNone},
	})
}

func item(productID, qty string) *entity.QuoteItem {
	return &entity.QuoteItem{ProductID: productID, Quantity: dec(qty)}
}

func loc(id, platform, name string) entity.ServiceLocation {
	return entity.ServiceLocation{ID: id, Platform: platform, Name: name}
}

func names(locations []entity.ServiceLocation) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Crecimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_CreaUbicacionesVaciasAlCrecer(t *testing.T) {
	items := []*entity.QuoteItem{item("p-sound", "3")}

	locations, dropped := quote.ReconcileLocations(items, nil, testCatalog(), seqID())

	require.Len(t, locations, 3)
	assert.Zero(t, dropped)
	ids := map[string]bool{}
	for _, l := range locations {
		assert.Equal(t, entity.PlatformSoundtrack, l.Platform)
		assert.Empty(t, l.Name, "las ubicaciones nuevas nacen sin nombre")
		ids[l.ID] = true
	}
	assert.Len(t, ids, 3, "cada ubicación nueva recibe ID propio")
}

func TestReconcile_ConservaExistentesYAgregaFaltantes(t *testing.T) {
	items := []*entity.QuoteItem{item("p-sound", "3")}
	existing := []entity.ServiceLocation{
		loc("a", entity.PlatformSoundtrack, "Sede Centro"),
	}

	locations, dropped := quote.ReconcileLocations(items, existing, testCatalog(), seqID())

	require.Len(t, locations, 3)
	assert.Zero(t, dropped)
	assert.Equal(t, "a", locations[0].ID, "la existente conserva identidad")
	assert.Equal(t, "Sede Centro", locations[0].Name, "y conserva su nombre")
	assert.Empty(t, locations[1].Name)
	assert.Empty(t, locations[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos sin plataforma o desconocidos
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_ProductoSinPlataformaNoAportaUbicaciones(t *testing.T) {
	items := []*entity.QuoteItem{
		item("p-install", "5"), // servicio sin plataforma
		item("p-fantasma", "4"), // no está en el catálogo
	}

	locations, dropped := quote.ReconcileLocations(items, nil, testCatalog(), seqID())

	assert.Empty(t, locations)
	assert.Zero(t, dropped)
}

func TestReconcile_CantidadNegativaCuentaComoCero(t *testing.T) {
	items := []*entity.QuoteItem{item("p-sound", "-2")}
	locations, _ := quote.ReconcileLocations(items, nil, testCatalog(), seqID())
	assert.Empty(t, locations)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reducción — las sin nombre caen primero, nunca una nombrada mientras quede una sin nombre
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_ReduccionEliminaSinNombrePrimero(t *testing.T) {
	items := []*entity.QuoteItem{item("p-sound", "2")}
	existing := []entity.ServiceLocation{
		loc("a", entity.PlatformSoundtrack, "Sede Centro"),
		loc("b", entity.PlatformSoundtrack, ""), // sin nombre: primera candidata a caer
		loc("c", entity.PlatformSoundtrack, "Sede Norte"),
	}

	locations, dropped := quote.ReconcileLocations(items, existing, testCatalog(), seqID())

	require.Len(t, locations, 2)
	assert.Zero(t, dropped, "solo cayó una sin nombre: nada que avisar")
	assert.Equal(t, []string{"Sede Centro", "Sede Norte"}, names(locations))
}

func TestReconcile_NombreSoloEspaciosCuentaComoSinNombre(t *testing.T) {
	items := []*entity.QuoteItem{item("p-sound", "1")}
	existing := []entity.ServiceLocation{
		loc("a", entity.PlatformSoundtrack, "   "),
		loc("b", entity.PlatformSoundtrack, "Sede Centro"),
	}

	locations, dropped := quote.ReconcileLocations(items, existing, testCatalog(), seqID())

	require.Len(t, locations, 1)
	assert.Zero(t, dropped)
	assert.Equal(t, "Sede Centro", locations[0].Name)
}

func TestReconcile_RecorteDeNombradasSeReportaComoAviso(t *testing.T) {
	// required=1 con dos nombradas y una sin nombre: cae la sin nombre y
	// además una nombrada; la pérdida de la nombrada se reporta, no se calla.
	items := []*entity.QuoteItem{item("p-sound", "1")}
	existing := []entity.ServiceLocation{
		loc("a", entity.PlatformSoundtrack, "Sede Centro"),
		loc("b", entity.PlatformSoundtrack, ""),
		loc("c", entity.PlatformSoundtrack, "Sede Norte"),
	}

	locations, dropped := quote.ReconcileLocations(items, existing, testCatalog(), seqID())

	require.Len(t, locations, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "Sede Centro", locations[0].Name, "se conserva la primera en orden original")
}

func TestReconcile_RequeridoCeroEliminaTodoYReportaNombradas(t *testing.T) {
	items := []*entity.QuoteItem{item("p-sound", "0")}
	existing := []entity.ServiceLocation{
		loc("a", entity.PlatformSoundtrack, "Sede Centro"),
		loc("b", entity.PlatformSoundtrack, "Sede Norte"),
	}

	locations, dropped := quote.ReconcileLocations(items, existing, testCatalog(), seqID())

	assert.Empty(t, locations)
	assert.Equal(t, 2, dropped)
}

// ──────────────────────────────────────────────────────────────────────────────
// Plataformas independientes y orden estable
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_PlataformasIndependientes(t *testing.T) {
	items := []*entity.QuoteItem{
		item("p-sound", "2"),
		item("p-beat", "1"),
	}
	existing := []entity.ServiceLocation{
		loc("b1", entity.PlatformBeatbreeze, "Bar Sur"),
		loc("s1", entity.PlatformSoundtrack, "Sede Centro"),
	}

	locations, dropped := quote.ReconcileLocations(items, existing, testCatalog(), seqID())

	require.Len(t, locations, 3)
	assert.Zero(t, dropped)
	// Primero soundtrack completo, luego beatbreeze.
	assert.Equal(t, entity.PlatformSoundtrack, locations[0].Platform)
	assert.Equal(t, entity.PlatformSoundtrack, locations[1].Platform)
	assert.Equal(t, entity.PlatformBeatbreeze, locations[2].Platform)
	assert.Equal(t, "Sede Centro", locations[0].Name)
	assert.Equal(t, "Bar Sur", locations[2].Name)
	// Posiciones renumeradas en orden final.
	for i, l := range locations {
		assert.Equal(t, i, l.Position)
	}
}

// Varias líneas del mismo producto/plataforma suman su requerido.
func TestReconcile_SumaPorPlataforma(t *testing.T) {
	items := []*entity.QuoteItem{
		item("p-sound", "1"),
		item("p-sound", "2"),
	}
	locations, _ := quote.ReconcileLocations(items, nil, testCatalog(), seqID())
	assert.Len(t, locations, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia
// ──────────────────────────────────────────────────────────────────────────────

// Dos pasadas sin cambiar las líneas deben producir listas idénticas:
// mismos IDs, mismos nombres, mismo orden. Sin deriva ni duplicados.
func TestReconcile_Idempotente(t *testing.T) {
	items := []*entity.QuoteItem{
		item("p-sound", "2"),
		item("p-beat", "2"),
	}
	existing := []entity.ServiceLocation{
		loc("s1", entity.PlatformSoundtrack, "Sede Centro"),
		loc("b1", entity.PlatformBeatbreeze, ""),
	}

	first, dropped1 := quote.ReconcileLocations(items, existing, testCatalog(), seqID())
	second, dropped2 := quote.ReconcileLocations(items, first, testCatalog(), seqID())

	assert.Zero(t, dropped1)
	assert.Zero(t, dropped2)
	assert.Equal(t, first, second, "la segunda pasada no debe crear, borrar ni reordenar nada")
}
