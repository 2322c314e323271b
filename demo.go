package colfmt

// DemoModel returns a small fixed dataset with headings, used by the CLI's
// --demo mode. Alignments are auto-detected, so the numeric column aligns
// right.
func DemoModel() *Model {
	rows := [][]string{
		{"Language", "Year", "Creator"},
		{"Go", "2009", "Robert Griesemer"},
		{"Python", "1991", "Guido van Rossum"},
		{"Rust", "2010", "Graydon Hoare"},
	}
	m, _ := FromRows(rows, true, AutoAlign()) // fixed rectangular data cannot fail
	return m
}
