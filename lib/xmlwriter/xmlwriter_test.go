package xmlwriter

import (
	"bytes"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	{
		// Full document
		var buf bytes.Buffer
		writer := New(&buf, "Defaulters", "Defaulter", []string{"Loan_ID", "Status"})
		assert.NoError(t, writer.WriteRow(map[string]any{"Loan_ID": "L000001", "Status": "default"}))
		assert.NoError(t, writer.Close())

		expected := `<?xml version="1.0" encoding="UTF-8"?>
<Defaulters>
  <Defaulter>
    <Loan_ID>L000001</Loan_ID>
    <Status>default</Status>
  </Defaulter>
</Defaulters>
`
		assert.Equal(t, expected, buf.String())
	}
	{
		// No rows still yields a well-formed document
		var buf bytes.Buffer
		writer := New(&buf, "Defaulters", "Defaulter", []string{"Loan_ID"})
		assert.NoError(t, writer.Close())
		assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<Defaulters>
</Defaulters>
`, buf.String())
	}
	{
		// Text content gets escaped
		var buf bytes.Buffer
		writer := New(&buf, "Defaulters", "Defaulter", []string{"Cust_Name"})
		assert.NoError(t, writer.WriteRow(map[string]any{"Cust_Name": `O'Brien & Sons <Ltd>`}))
		assert.NoError(t, writer.Close())
		assert.Contains(t, buf.String(), "<Cust_Name>O&#39;Brien &amp; Sons &lt;Ltd&gt;</Cust_Name>")
	}
	{
		// Missing column yields an empty element
		var buf bytes.Buffer
		writer := New(&buf, "Defaulters", "Defaulter", []string{"Loan_ID", "Status"})
		assert.NoError(t, writer.WriteRow(map[string]any{"Loan_ID": "L000002"}))
		assert.NoError(t, writer.Close())
		assert.Contains(t, buf.String(), "<Status></Status>")
	}
	{
		// Close is idempotent
		var buf bytes.Buffer
		writer := New(&buf, "Defaulters", "Defaulter", nil)
		assert.NoError(t, writer.Close())
		assert.NoError(t, writer.Close())
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("</Defaulters>")))
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "L000001", formatValue("L000001"))
	assert.Equal(t, "1234", formatValue(int64(1234)))
	assert.Equal(t, "9.25", formatValue(9.25))
	assert.Equal(t, "2024-06-15", formatValue(civil.Date{Year: 2024, Month: time.June, Day: 15}))
	assert.Equal(t, "2024-06-15T10:30:00", formatValue(civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.June, Day: 15},
		Time: civil.Time{Hour: 10, Minute: 30},
	}))
	assert.Equal(t, "17:00:00", formatValue(civil.Time{Hour: 17}))
	assert.Equal(t, "2024-06-15T10:30:00Z", formatValue(time.Date(2024, time.June, 15, 12, 30, 0, 0, time.FixedZone("x", 2*60*60))))
	assert.Equal(t, "1234.57", formatValue(big.NewRat(123457, 100)))
	assert.Equal(t, "hello", formatValue([]byte("hello")))
}
