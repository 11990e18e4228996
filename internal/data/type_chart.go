package data

// Effectiveness returns the product of the type-chart multipliers of an
// attacking type against every defending type. A typeless attack ("") is
// always neutral.
func Effectiveness(attack string, defend []string) float64 {
	if attack == "" || Load() != nil {
		return 1
	}
	row := typeChart[attack]
	mult := 1.0
	for _, t := range defend {
		if m, ok := row[t]; ok {
			mult *= m
		}
	}
	return mult
}
