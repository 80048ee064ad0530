package domain

import "strings"

// carrierNames maps IATA carrier codes to display names.
var carrierNames = map[string]string{
	// U.S.
	"AA": "American Airlines",
	"B6": "JetBlue Airways",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
	"AS": "Alaska Airlines",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"OO": "SkyWest Airlines",
	"US": "US Airways",

	// Canada
	"AC": "Air Canada",
	"WS": "WestJet",

	// Europe
	"AF": "Air France",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"KL": "KLM Royal Dutch Airlines",
	"IB": "Iberia",
	"AZ": "Alitalia",
	"SK": "Scandinavian Airlines",
	"LO": "LOT Polish Airlines",
	"LX": "SWISS International Air Lines",
	"SN": "Brussels Airlines",
	"EI": "Aer Lingus",
	"TP": "TAP Air Portugal",
	"OS": "Austrian Airlines",
	"SU": "Aeroflot",
	"TK": "Turkish Airlines",
	"JU": "Air Serbia",
	"S7": "S7 Airlines",

	// Asia
	"CX": "Cathay Pacific",
	"CI": "China Airlines",
	"CZ": "China Southern Airlines",
	"CA": "Air China",
	"JL": "Japan Airlines",
	"NH": "All Nippon Airways",
	"KE": "Korean Air",
	"SQ": "Singapore Airlines",
	"MU": "China Eastern Airlines",
	"FM": "Shanghai Airlines",
	"UL": "SriLankan Airlines",

	// Middle East
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"EY": "Etihad Airways",
	"ME": "Middle East Airlines",

	// Oceania
	"QF": "Qantas",
	"VA": "Virgin Australia",
	"NZ": "Air New Zealand",
	"FJ": "Fiji Airways",

	// Latin America
	"LA": "LATAM Airlines",
	"JJ": "LATAM Airlines Brasil",
	"AR": "Aerolíneas Argentinas",
	"G3": "Gol Transportes Aéreos",
}

// LookupCarrier returns the display name for a carrier code, or the code itself if unknown.
func LookupCarrier(code string) string {
	if code == "" {
		return "N/A"
	}
	if name, ok := carrierNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// CarrierName resolves each code to a name. A single operating carrier is
// returned as-is; mixed itineraries list the distinct names in order.
func CarrierName(codes []string) string {
	seen := make(map[string]struct{}, len(codes))
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		names = append(names, LookupCarrier(code))
	}
	return strings.Join(names, ", ")
}
