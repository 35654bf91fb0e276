package annotate

// FlagTable maps exact project names to a raw reviewer mark: "g" for
// green, "r" for red, anything else meaning no call either way. The
// table is fixed at startup and edited by redeploying, never at
// runtime. Keys must match the spreadsheet's Project Name exactly
// after trimming leading/trailing whitespace.
type FlagTable map[string]string

// DefaultFlags returns the curated review state for the current
// tracking sheet
func DefaultFlags() FlagTable {
	return FlagTable{
		"Sambar Power":                    "g",
		"Bradford West 100MW":             "r",
		"Bicker Fen 2 Solar":              "r",
		"Didcot Energy Park":              "r",
		"Berkswell Energy Storage":        "",
		"WELBAR ENERGY STORAGE":           "g",
		"Cellarhead 400kV Energy Storage": "r",
		"Worset Lane Energy Hub":          "r",
		"Sundon Battery Energy Storage":   "g",
		"Capenhurst BESS":                 "g",
		"Legacy":                          "",
		"Monk Fryston":                    "g",
		"Whitegate":                       "r",
		"Iron Acton":                      "g",
		"Cryogenic Battery System (Synchronous)": "g",
		"Norwich battery storage":                "",
		"Bolney Green Energy Hub":                "r",
		"Flash Solar Farm (Staythorpe)":          "g",
		"Rushett Lane BESS":                      "r",
		"Bramley co-located bess and solar":      "",
		"Fairglen BESS":                          "r",
		"Goldborough Road BESS":                  "",
		"Fleet EGH (Tertiary) Coxmoor Wood BESS": "r",
		"WORSET LANE BESS":                       "r",
		"Keithick Estate, California Farm solar and battery storage": "r",
		"Pembroke BESS":                    "",
		"Eggborough CCGT - OCGT - BESS":    "r",
		"Neilston 400kV Greener Grid Park": "g",
		"Coylton 275kV Greener Grid Park":  "g",
		"Sizing John (Rainhill)":           "g",
		"Harker Green Energy Centre":       "",
		"Zenobe Blackhillock 300 MW":       "g",
	}
}
