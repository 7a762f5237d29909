package schema

import "sort"

// FieldID identifies one of the semantic manifest fields the engine can
// assign a column to.
type FieldID string

const (
	FieldTrackingCode   FieldID = "tracking_code"
	FieldMasterWaybill  FieldID = "master_waybill"
	FieldConsigneeName  FieldID = "consignee_name"
	FieldIdentification FieldID = "identification"
	FieldPhoneNumber    FieldID = "phone_number"
	FieldAddress        FieldID = "address"
	FieldDescription    FieldID = "description"
	FieldDeclaredValue  FieldID = "declared_value"
	FieldWeight         FieldID = "weight"
	FieldVolume         FieldID = "volume"
	FieldOriginCountry  FieldID = "origin_country"
	FieldProvince       FieldID = "province"
	FieldCity           FieldID = "city"
	FieldDistrict       FieldID = "district"
)

// FieldDefinition describes one target field: its assignment priority,
// the known header spellings for it, and whether a manifest is considered
// incomplete without it.
type FieldDefinition struct {
	ID       FieldID  `json:"id"`
	Priority int      `json:"priority"`
	Variants []string `json:"variants"`
	Required bool     `json:"required"`
}

// builtinFields is the vocabulary of record. Adding a synonym or a whole
// field happens here and only here; the matching algorithm never changes.
// Variants mix English, Spanish and the abbreviations couriers actually
// put in their spreadsheets.
var builtinFields = []FieldDefinition{
	{
		ID:       FieldTrackingCode,
		Priority: 100,
		Required: true,
		Variants: []string{
			"tracking", "tracking number", "tracking code", "tracking no",
			"hawb", "house waybill", "house air waybill",
			"numero de guia", "no de guia", "guia hija",
			"codigo de rastreo", "rastreo",
			"reference", "referencia",
			"shipment id", "numero de envio", "envio",
		},
	},
	{
		ID:       FieldMasterWaybill,
		Priority: 95,
		Variants: []string{
			"mawb", "mawb number", "master", "master awb", "master waybill",
			"master air waybill", "guia master", "guia madre",
			"guia aerea master",
		},
	},
	{
		ID:       FieldConsigneeName,
		Priority: 92,
		Required: true,
		Variants: []string{
			"consignee", "consignee name", "consignatario",
			"nombre del consignatario", "nombre destinatario",
			"nombre del destinatario", "receiver", "receiver name",
			"nombre", "cliente", "customer name",
		},
	},
	{
		ID:       FieldIdentification,
		Priority: 88,
		Variants: []string{
			"identification", "id number", "identificacion", "cedula",
			"cedula destinatario", "dni", "ruc", "documento",
			"documento de identidad", "tax id", "passport", "pasaporte",
		},
	},
	{
		ID:       FieldPhoneNumber,
		Priority: 85,
		Variants: []string{
			"phone", "phone number", "telephone", "telefono", "celular",
			"mobile", "movil", "tel", "numero de telefono", "contact number",
		},
	},
	{
		ID:       FieldDeclaredValue,
		Priority: 82,
		Required: true,
		Variants: []string{
			"declared value", "value", "valor", "valor declarado",
			"valor usd", "fob", "valor fob", "precio", "price", "amount",
			"monto", "customs value", "valor aduana",
		},
	},
	{
		ID:       FieldWeight,
		Priority: 80,
		Required: true,
		Variants: []string{
			"weight", "weight kg", "peso", "peso kg", "peso bruto",
			"gross weight", "kilos", "kg", "lbs", "pounds", "peso libras",
		},
	},
	{
		ID:       FieldDescription,
		Priority: 75,
		Required: true,
		Variants: []string{
			"description", "descripcion", "descripcion mercancia",
			"contenido", "content", "contents", "goods", "mercancia",
			"detalle", "item description", "producto", "commodity",
			"reference", "referencia",
		},
	},
	{
		ID:       FieldAddress,
		Priority: 72,
		Variants: []string{
			"address", "direccion", "direccion destinatario",
			"shipping address", "delivery address", "domicilio",
			"consignee address", "direccion de entrega", "ship to",
			"destination address",
		},
	},
	{
		ID:       FieldVolume,
		Priority: 68,
		Variants: []string{
			"volume", "volumen", "volumen m3", "cbm", "m3", "cubic", "vol",
		},
	},
	{
		ID:       FieldOriginCountry,
		Priority: 65,
		Variants: []string{
			"origin", "origin country", "country of origin", "country",
			"pais", "pais de origen", "pais origen", "origen", "procedencia",
		},
	},
	{
		ID:       FieldProvince,
		Priority: 60,
		Variants: []string{
			"province", "provincia", "state", "estado", "departamento",
			"region",
		},
	},
	{
		ID:       FieldCity,
		Priority: 58,
		Variants: []string{
			"city", "ciudad", "municipio", "localidad", "town",
		},
	},
	{
		ID:       FieldDistrict,
		Priority: 55,
		Variants: []string{
			"district", "distrito", "canton", "parroquia", "barrio", "zona",
			"comuna", "sector",
		},
	},
}

// Catalog is the immutable field vocabulary, ordered by priority. It is
// built once (at process start for the default catalog) and never mutated.
type Catalog struct {
	fields []FieldDefinition
	byID   map[FieldID]FieldDefinition
}

// NewCatalog builds a catalog from the given definitions, ordered by
// priority descending. Equal priorities keep declaration order, so the
// resulting assignment order is a deterministic total order.
func NewCatalog(defs []FieldDefinition) *Catalog {
	fields := make([]FieldDefinition, len(defs))
	copy(fields, defs)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Priority > fields[j].Priority
	})

	byID := make(map[FieldID]FieldDefinition, len(fields))
	for _, def := range fields {
		byID[def.ID] = def
	}
	return &Catalog{fields: fields, byID: byID}
}

var defaultCatalog = NewCatalog(builtinFields)

// DefaultCatalog returns the built-in field vocabulary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// AllFields returns the field definitions ordered by priority descending.
func (c *Catalog) AllFields() []FieldDefinition {
	out := make([]FieldDefinition, len(c.fields))
	copy(out, c.fields)
	return out
}

// VariantsFor returns the known header spellings for a field, or nil if
// the field is not in the catalog.
func (c *Catalog) VariantsFor(id FieldID) []string {
	def, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := make([]string, len(def.Variants))
	copy(out, def.Variants)
	return out
}

// Definition looks up a single field definition.
func (c *Catalog) Definition(id FieldID) (FieldDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}
