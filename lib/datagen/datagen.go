package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ikl-data/loanpipe/lib/csvwriter"
)

// Header matches the explicit schema the loans loader expects.
var Header = []string{"Loan_ID", "Cust_Name", "Loan_Amount", "Int_Rate", "Instalments", "Start_Date", "End_Date", "Status"}

var (
	firstNames = []string{"Asha", "Ravi", "Priya", "Suresh", "Kiran", "Neha", "Amit", "Sanjay", "Anita", "Rahul",
		"Deepa", "Vikram", "Meera", "Arjun", "Lakshmi", "Kavita", "Ramesh", "Anjali", "Manoj", "Pooja"}
	lastNames = []string{"Sharma", "Patel", "Rao", "Kumar", "Singh", "Gupta", "Nair", "Iyer", "Menon",
		"Chowdhury", "Desai", "Kapoor", "Joshi", "Varma", "Khan", "Naik"}
	instalmentChoices = []int{12, 24, 36, 48, 60, 72, 84, 96}
)

const dateLayout = "2006-01-02"

var (
	startBase = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	endBase   = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
)

// Generator produces synthetic loan rows. The same seed yields the same rows.
type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// status is weighted roughly 70% Active, 25% Closed, 5% Default.
func (g *Generator) status() string {
	roll := g.rng.Float64()
	switch {
	case roll < 0.70:
		return "Active"
	case roll < 0.95:
		return "Closed"
	default:
		return "Default"
	}
}

// addMonths clamps the day-of-month so e.g. Jan 31 + 1 month = Feb 28/29,
// rather than time.AddDate's rollover into March.
func addMonths(start time.Time, months int) time.Time {
	year := start.Year() + (int(start.Month())-1+months)/12
	month := time.Month((int(start.Month())-1+months)%12 + 1)
	day := min(start.Day(), daysIn(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Row generates the i-th loan row (1-based), ordered per [Header].
func (g *Generator) Row(i int) []string {
	loanID := fmt.Sprintf("L%06d", i)
	custName := fmt.Sprintf("%s %s", firstNames[g.rng.Intn(len(firstNames))], lastNames[g.rng.Intn(len(lastNames))])
	loanAmount := 5000 + g.rng.Float64()*(500000-5000)
	intRate := 6.0 + g.rng.Float64()*(22.0-6.0)
	instalments := instalmentChoices[g.rng.Intn(len(instalmentChoices))]

	maxStartDays := int(endBase.Sub(startBase).Hours() / 24)
	startDate := startBase.AddDate(0, 0, g.rng.Intn(maxStartDays+1))
	endDate := addMonths(startDate, instalments)

	return []string{
		loanID,
		custName,
		fmt.Sprintf("%.2f", loanAmount),
		fmt.Sprintf("%.2f", intRate),
		fmt.Sprintf("%d", instalments),
		startDate.Format(dateLayout),
		endDate.Format(dateLayout),
		g.status(),
	}
}

// WriteCSV writes the header plus n generated rows.
func (g *Generator) WriteCSV(w *csvwriter.Writer, n int) error {
	if err := w.Write(Header); err != nil {
		return err
	}

	for i := 1; i <= n; i++ {
		if err := w.Write(g.Row(i)); err != nil {
			return err
		}
	}

	return w.Flush()
}
