package waybill

// carrierPrefixes maps 3-digit IATA airline prefixes to carrier names.
// Loaded once at process start, read-only afterwards. Covers the
// carriers seen on Latin American air-cargo lanes plus the major
// integrators; an absent prefix is not an error (see UnknownCarrier).
var carrierPrefixes = map[string]string{
	"001": "American Airlines",
	"006": "Delta Air Lines",
	"014": "Air Canada",
	"016": "United Airlines",
	"020": "Lufthansa Cargo",
	"023": "FedEx",
	"045": "LATAM Airlines",
	"047": "TAP Air Portugal",
	"057": "Air France",
	"065": "Saudia Cargo",
	"071": "Ethiopian Airlines",
	"074": "KLM Cargo",
	"075": "Iberia",
	"079": "Philippine Airlines",
	"080": "LOT Polish Airlines",
	"081": "Qantas Freight",
	"086": "Air New Zealand",
	"098": "Air India",
	"105": "Finnair Cargo",
	"106": "Icelandair Cargo",
	"117": "SAS Cargo",
	"125": "British Airways",
	"126": "Garuda Indonesia",
	"131": "Japan Airlines",
	"139": "Aeromexico Cargo",
	"145": "LATAM Cargo Chile",
	"157": "Qatar Airways Cargo",
	"160": "Cathay Pacific Cargo",
	"172": "Cargolux",
	"176": "Emirates SkyCargo",
	"180": "Korean Air Cargo",
	"202": "TACA",
	"205": "All Nippon Airways",
	"217": "Thai Airways",
	"230": "Avianca Cargo",
	"235": "Turkish Airlines Cargo",
	"297": "China Airlines Cargo",
	"307": "LATAM Cargo Colombia",
	"369": "Atlas Air",
	"403": "Polar Air Cargo",
	"406": "UPS Airlines",
	"549": "Amerijet International",
	"577": "Avianca Ecuador",
	"729": "Boliviana de Aviación",
	"957": "Estafeta Carga Aérea",
	"988": "Asiana Cargo",
}
