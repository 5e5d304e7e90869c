package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportResult_Counters(t *testing.T) {
	r := NewImportResult()
	require.NotNil(t, r.Errors)
	assert.Empty(t, r.Errors)

	r.RecordCreated()
	r.RecordCreated()
	r.RecordUpdated()
	r.RecordError("Broken Tool", errors.New("constraint violation"))

	assert.Equal(t, 2, r.Created)
	assert.Equal(t, 1, r.Updated)
	assert.Len(t, r.Errors, 1)
	assert.Equal(t, "Broken Tool", r.Errors[0].CompanyName)
	assert.Equal(t, "constraint violation", r.Errors[0].Error)
	assert.Equal(t, 4, r.Processed())
}

func TestImportResult_Summary(t *testing.T) {
	r := NewImportResult()
	r.RecordCreated()
	r.RecordUpdated()
	r.RecordUpdated()
	r.RecordError("X", errors.New("nope"))

	assert.Equal(t, "Processed 4 tools. Created: 1, Updated: 2, Errors: 1", r.Summary())
}
