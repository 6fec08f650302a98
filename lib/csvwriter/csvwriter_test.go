package csvwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := New(&buf)
	assert.NoError(t, writer.Write([]string{"Loan_ID", "Status"}))
	assert.NoError(t, writer.Write([]string{"L000001", "default"}))
	assert.NoError(t, writer.Write([]string{"L000002", `has,comma and "quotes"`}))
	assert.NoError(t, writer.Flush())

	assert.Equal(t, "Loan_ID,Status\nL000001,default\nL000002,\"has,comma and \"\"quotes\"\"\"\n", buf.String())
}

func TestFileWriter(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "loans.csv")
	writer, err := NewFilePath(fp)
	assert.NoError(t, err)
	assert.NoError(t, writer.Write([]string{"Loan_ID"}))
	assert.NoError(t, writer.Write([]string{"L000001"}))
	assert.NoError(t, writer.Close())

	contents, err := os.ReadFile(fp)
	assert.NoError(t, err)
	assert.Equal(t, "Loan_ID\nL000001\n", string(contents))
}
