package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnoseNotConfigured(t *testing.T) {
	uc := NewDiagnosticsUC(nil, false, false, discardLogger())

	res := uc.Diagnose(context.Background())

	assert.Equal(t, "✅ Running", res.Backend)
	assert.Equal(t, "❌ Not Available", res.Database)
	assert.Equal(t, "❌ Not Set", res.DatabaseURL)
	assert.Equal(t, "❌ Not Set", res.DatabaseName)
	assert.Equal(t, "Not Connected", res.ConnectionStatus)
	assert.Empty(t, res.Collections)
	assert.NotNil(t, res.Collections)
}

func TestDiagnoseWorking(t *testing.T) {
	collections := make([]string, 0, 12)
	for i := range 12 {
		collections = append(collections, fmt.Sprintf("c%d", i))
	}
	repo := &fakeProductRepo{diag: NewStoreDiagnostics("luxe", collections)}
	uc := NewDiagnosticsUC(repo, true, true, discardLogger())

	res := uc.Diagnose(context.Background())

	assert.Equal(t, "✅ Connected & Working", res.Database)
	assert.Equal(t, "✅ Set", res.DatabaseURL)
	assert.Equal(t, "✅ Set", res.DatabaseName)
	assert.Equal(t, "Connected", res.ConnectionStatus)
	assert.Len(t, res.Collections, 10)
	assert.Equal(t, "c0", res.Collections[0])
}

func TestDiagnoseStoreError(t *testing.T) {
	long := strings.Repeat("x", 80)
	repo := &fakeProductRepo{diagErr: errors.New(long)}
	uc := NewDiagnosticsUC(repo, true, false, discardLogger())

	res := uc.Diagnose(context.Background())

	assert.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("x", 50), res.Database)
	assert.Equal(t, "Connected", res.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", res.DatabaseName)
	assert.Empty(t, res.Collections)
}
