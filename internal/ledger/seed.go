package ledger

import "github.com/shopspring/decimal"

// Seed account parameters.
var (
	seedPersons = []struct {
		Name     string
		SecretID string
	}{
		{"Narendra", "1234-5678"},
		{"Ilia", "2345-6789"},
		{"Mehrdad", "3456-7890"},
		{"Vinay", "4567-8901"},
		{"Arben", "5678-9012"},
		{"Patrick", "6789-0123"},
		{"Yin", "7890-1234"},
		{"Hao", "8901-2345"},
		{"Jake", "9012-3456"},
		{"Mayy", "1224-5678"},
		{"Nicoletta", "2344-6789"},
	}

	defaultVisaLimit = decimal.NewFromInt(1200)
)

// Seed populates the registry with the fixed demo data set: eleven persons,
// eight accounts and their holder associations. Account numbers come out of
// the shared sequence, so on an empty ledger the first account is VS-100000
// and the last SV-100007.
func Seed(l *Ledger) error {
	for _, p := range seedPersons {
		if _, err := l.AddPerson(p.Name, p.SecretID); err != nil {
			return err
		}
	}

	l.OpenVisa(decimal.Zero, defaultVisaLimit)                         // VS-100000
	l.OpenVisa(decimal.NewFromInt(150), decimal.NewFromInt(-500))      // VS-100001
	l.OpenSaving(decimal.NewFromInt(5000))                             // SV-100002
	l.OpenSaving(decimal.Zero)                                         // SV-100003
	l.OpenChecking(decimal.NewFromInt(2000), false)                    // CK-100004
	l.OpenChecking(decimal.NewFromInt(1500), true)                     // CK-100005
	l.OpenVisa(decimal.NewFromInt(50), decimal.NewFromInt(-550))       // VS-100006
	l.OpenSaving(decimal.NewFromInt(1000))                             // SV-100007

	associations := []struct {
		Number string
		Names  []string
	}{
		{"VS-100000", []string{"Narendra", "Ilia", "Mehrdad"}},
		{"VS-100001", []string{"Vinay", "Arben", "Patrick"}},
		{"SV-100002", []string{"Yin", "Hao", "Jake"}},
		{"SV-100003", []string{"Mayy", "Nicoletta"}},
		{"CK-100004", []string{"Mehrdad", "Arben", "Yin"}},
		{"CK-100005", []string{"Jake", "Nicoletta"}},
		{"VS-100006", []string{"Ilia", "Vinay"}},
		{"SV-100007", []string{"Patrick", "Hao"}},
	}
	for _, assoc := range associations {
		for _, name := range assoc.Names {
			if err := l.Associate(assoc.Number, name); err != nil {
				return err
			}
		}
	}
	return nil
}
