package tenants_test

import (
	"testing"

	"notes-saas/internal/domain/tenants"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Acme":             "acme",
		"Globex Corp":      "globex-corp",
		"  Initech  ":      "initech",
		"Wayne & Co.":      "wayne-co",
		"--Umbrella--":     "umbrella",
		"Stark  Industries": "stark-industries",
		"":                 "tenant",
		"!!!":              "tenant",
	}
	for in, want := range cases {
		assert.Equal(t, want, tenants.MakeSlug(in), "MakeSlug(%q)", in)
	}
}

func TestPlanValid(t *testing.T) {
	assert.True(t, tenants.PlanFree.Valid())
	assert.True(t, tenants.PlanPro.Valid())
	assert.False(t, tenants.Plan("enterprise").Valid())
	assert.False(t, tenants.Plan("").Valid())
}
