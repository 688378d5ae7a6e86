package site

// Baseline descriptor words shared by every site; individual profiles
// extend the list where the local naming habits demand it.
var baseGenericWords = []string{
	"gondola", "gondola lift", "cable car", "aerial cableway",
	"teleferico", "teleférico", "teleferik", "tele",
	"chairlift", "chair lift", "bahn", "lift", "ropeway",
}

var defaultHeaders = []string{
	"Name_en", "Name_ru", "Genitive_ru", "Locative_ru",
	"lat", "lon", "osm_name", "osm_type", "osm_id", "aerialway",
}

// Builtin returns the profiles of the deployed sites. The returned map is a
// fresh copy, safe for the caller to overlay.
func Builtin() map[string]Profile {
	profiles := []Profile{
		{
			Key:         "shymbulak",
			Title:       "Shymbulak / Medeu (Almaty, KZ)",
			Spreadsheet: "POIs",
			Worksheet:   "Shymbulak",
			BBox:        [4]float64{43.10, 76.85, 43.25, 77.15},
			GenericWords: append(append([]string{}, baseGenericWords...),
				"express", "pass", "line", "station"),
			Aliases: map[string][]string{
				"Medeu":     {"Medeo", "Medeu Station", "Medeo Station"},
				"Shymbulak": {"Chimbulak", "Shymbulak Resort", "Chimbulak Resort"},
				"Shymbulak Cableway": {
					"Medeu–Shymbulak Gondola", "Medeu-Shymbulak Gondola",
					"Medeo–Shymbulak Gondola", "Medeo-Shymbulak Gondola",
					"Medeu–Shymbulak Cable Car", "Medeo–Shymbulak Cable Car",
					"Gondola Medeu Shymbulak", "Cableway Medeu Shymbulak",
				},
				"Combi-1":     {"Combi 1", "Combi I", "Kombi-1", "Kombi 1"},
				"Combi-2":     {"Combi 2", "Combi II", "Kombi-2", "Kombi 2"},
				"KKD-4":       {"KKD 4", "KKD4"},
				"Konus":       {"Konus T-bar", "Konus drag lift", "Cone Lift"},
				"Left Talgar": {"Left Talgar Lift", "Levyi Talgar", "Levyy Talgar"},
			},
			ContextTerms: []string{
				"Shymbulak", "Chimbulak", "Medeu", "Medeo",
				"Ile-Alatau National Park", "Almaty", "Kazakhstan", "Trans-Ili Alatau",
			},
			FallbackSuffixes: []string{
				"Shymbulak", "Chimbulak", "Medeu",
				"Almaty", "Ile-Alatau National Park", "Kazakhstan",
			},
			Headers: defaultHeaders,
		},
		{
			Key:          "catedral",
			Title:        "Catedral Alta Patagonia (Bariloche, AR)",
			Spreadsheet:  "POIs",
			Worksheet:    "Catedral Alta Patagonia",
			BBox:         [4]float64{-41.220, -71.600, -41.050, -71.300},
			GenericWords: append([]string{}, baseGenericWords...),
			ContextTerms: []string{
				"Catedral Alta Patagonia", "Cerro Catedral", "Villa Catedral",
				"San Carlos de Bariloche", "Bariloche", "Río Negro",
				"Patagonia", "Argentina",
			},
			FallbackSuffixes: []string{
				"Catedral Alta Patagonia", "Cerro Catedral", "Bariloche",
			},
			Headers: []string{
				"lift_name_en", "ru_name", "ru_genitive", "ru_locative",
				"lat", "lon", "osm_name", "osm_type", "osm_id", "aerialway",
			},
		},
		{
			Key:          "garmisch",
			Title:        "Garmisch-Classic (Bavaria, DE)",
			Spreadsheet:  "POIs",
			Worksheet:    "Garmisch-Partenkirchen",
			BBox:         [4]float64{47.42, 10.90, 47.55, 11.20},
			GenericWords: append(append([]string{}, baseGenericWords...), "express"),
			ContextTerms: []string{
				"Garmisch-Partenkirchen", "Garmisch Classic", "Alpspitze",
				"Kreuzeck", "Hausberg", "Bavaria", "Germany",
			},
			FallbackSuffixes: []string{
				"Garmisch-Partenkirchen", "Garmisch Classic",
				"Alpspitze", "Kreuzeck", "Hausberg",
			},
			Headers: defaultHeaders,
		},
	}

	out := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		out[p.Key] = p
	}
	return out
}
