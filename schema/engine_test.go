package schema

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultOptions())
}

func TestInferExactHeaders(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Tracking Number"},
		{Header: "Consignee Name"},
		{Header: "Declared Value (USD)"},
		{Header: "Weight KG"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tracking Number", mapping.Assignments[FieldTrackingCode])
	assert.Equal(t, "Consignee Name", mapping.Assignments[FieldConsigneeName])
	assert.Equal(t, "Declared Value (USD)", mapping.Assignments[FieldDeclaredValue])
	assert.Equal(t, "Weight KG", mapping.Assignments[FieldWeight])

	for _, field := range []FieldID{FieldTrackingCode, FieldConsigneeName, FieldDeclaredValue, FieldWeight} {
		assert.GreaterOrEqual(t, mapping.Confidence[field], 0.85, "field %s", field)
	}

	// No description column in this manifest.
	assert.Contains(t, mapping.UnmatchedRequired, FieldDescription)
}

func TestInferSpanishHeaders(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Guía", Sample: []string{"ZX12345678", "ZX12345679"}},
		{Header: "Nombre del Consignatario", Sample: []string{"María Paz", "Luis Vega"}},
		{Header: "Descripción", Sample: []string{"repuestos de bicicleta", "ropa usada"}},
		{Header: "Peso (Kg)", Sample: []string{"1.5", "12,3"}},
		{Header: "Valor FOB", Sample: []string{"$45.00", "120"}},
		{Header: "Ciudad", Sample: []string{"Quito", "Cuenca"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Guía", mapping.Assignments[FieldTrackingCode])
	assert.Equal(t, "Nombre del Consignatario", mapping.Assignments[FieldConsigneeName])
	assert.Equal(t, "Descripción", mapping.Assignments[FieldDescription])
	assert.Equal(t, "Peso (Kg)", mapping.Assignments[FieldWeight])
	assert.Equal(t, "Valor FOB", mapping.Assignments[FieldDeclaredValue])
	assert.Equal(t, "Ciudad", mapping.Assignments[FieldCity])
	assert.Empty(t, mapping.UnmatchedRequired)
}

func TestInferRejectsNoise(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Foo123", Sample: []string{"xk1", "zz9"}},
	})
	require.NoError(t, err)

	assert.Empty(t, mapping.Assignments)
	// Every required field goes unmatched.
	assert.Contains(t, mapping.UnmatchedRequired, FieldTrackingCode)
	assert.Contains(t, mapping.UnmatchedRequired, FieldConsigneeName)
	assert.Contains(t, mapping.UnmatchedRequired, FieldDescription)
	assert.Contains(t, mapping.UnmatchedRequired, FieldDeclaredValue)
	assert.Contains(t, mapping.UnmatchedRequired, FieldWeight)
}

// A generic header with waybill-shaped values is claimed on content
// evidence alone, and its confidence reflects the missing name signal.
func TestInferContentOnlyColumn(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Col1", Sample: []string{"230-87654321", "045-11223344"}},
	})
	require.NoError(t, err)

	require.Equal(t, "Col1", mapping.Assignments[FieldMasterWaybill])
	assert.Greater(t, mapping.Confidence[FieldMasterWaybill], 0.25)
	assert.Less(t, mapping.Confidence[FieldMasterWaybill], 0.35)

	// The low-confidence assignment is called out.
	assert.NotEmpty(t, mapping.Warnings)
}

// "Reference" is a known spelling for both the tracking code and the
// description; with identical evidence the higher-priority field wins,
// deterministically.
func TestInferPriorityTieBreak(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Reference", Sample: []string{"ref", "r2"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Reference", mapping.Assignments[FieldTrackingCode])
	assert.InDelta(t, 0.70, mapping.Confidence[FieldTrackingCode], 1e-9)
	assert.NotContains(t, mapping.Assignments, FieldDescription)
}

func TestInferAlternatesRecorded(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Tracking Number"},
		{Header: "Numero de Guia"},
	})
	require.NoError(t, err)

	// Leftmost column wins the tie; the other is kept as an alternate.
	require.Equal(t, "Tracking Number", mapping.Assignments[FieldTrackingCode])
	require.NotEmpty(t, mapping.Alternates[FieldTrackingCode])
	assert.Equal(t, "Numero de Guia", mapping.Alternates[FieldTrackingCode][0].Header)
	assert.InDelta(t, 1.0, mapping.Alternates[FieldTrackingCode][0].Score, 1e-9)
}

func TestInferUniqueAssignments(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Guia Madre", Sample: []string{"230-87654321"}},
		{Header: "Tracking"},
		{Header: "Peso"},
		{Header: "Valor"},
		{Header: "Descripcion", Sample: []string{"juguetes plásticos surtidos"}},
		{Header: "Telefono"},
		{Header: "Provincia"},
	})
	require.NoError(t, err)

	usedHeaders := make(map[string]bool)
	for field, header := range mapping.Assignments {
		assert.False(t, usedHeaders[header], "header %q assigned to %s and another field", header, field)
		usedHeaders[header] = true
	}
}

func TestInferBoundedConfidence(t *testing.T) {
	engine := newTestEngine()
	faker := gofakeit.New(7)

	for run := 0; run < 25; run++ {
		var columns []RawColumn
		n := faker.IntRange(0, 12)
		for i := 0; i < n; i++ {
			col := RawColumn{Header: faker.BuzzWord()}
			for j := 0; j < faker.IntRange(0, 5); j++ {
				col.Sample = append(col.Sample, faker.Word())
			}
			columns = append(columns, col)
		}
		if columns == nil {
			columns = []RawColumn{}
		}

		mapping, err := engine.Infer(columns)
		require.NoError(t, err)
		for field, confidence := range mapping.Confidence {
			assert.GreaterOrEqual(t, confidence, 0.0, "field %s", field)
			assert.LessOrEqual(t, confidence, 1.0, "field %s", field)
			assert.Contains(t, mapping.Assignments, field)
		}
	}
}

func TestInferNilColumns(t *testing.T) {
	_, err := newTestEngine().Infer(nil)
	assert.ErrorIs(t, err, ErrNilColumns)
}

func TestInferEmptyManifest(t *testing.T) {
	mapping, err := newTestEngine().Infer([]RawColumn{})
	require.NoError(t, err)
	assert.Empty(t, mapping.Assignments)
	assert.Len(t, mapping.UnmatchedRequired, 5)
}

func TestInferWarnsOnMessyHeaders(t *testing.T) {
	engine := newTestEngine()

	mapping, err := engine.Infer([]RawColumn{
		{Header: "Peso"},
		{Header: "Peso"},
		{Header: ""},
	})
	require.NoError(t, err)

	var duplicate, blank bool
	for _, w := range mapping.Warnings {
		switch {
		case strings.Contains(w, "duplicate"):
			duplicate = true
		case strings.Contains(w, "empty header"):
			blank = true
		}
	}
	assert.True(t, duplicate, "expected a duplicate-header warning")
	assert.True(t, blank, "expected an empty-header warning")
}

func TestSampleSizeClamped(t *testing.T) {
	opts := DefaultOptions()
	opts.SampleSize = 2
	engine := NewEngine(opts)

	// Only the first two values are seen: both match the master shape.
	mapping, err := engine.Infer([]RawColumn{
		{Header: "Col1", Sample: []string{"230-87654321", "045-11223344", "garbage", "more garbage"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Col1", mapping.Assignments[FieldMasterWaybill])
	assert.InDelta(t, 0.30, mapping.Confidence[FieldMasterWaybill], 1e-9)
}
