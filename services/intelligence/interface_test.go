// File: services/intelligence/interface_test.go
package ai

import (
	"testing"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

func TestDetectServiceType(t *testing.T) {
	cases := map[string]models.ServiceType{
		"I need a loan signing next week":       models.ServiceLoanSigning,
		"can we do this online?":                models.ServiceRON,
		"do you offer evening appointments":     models.ServiceExtendedHours,
		"just a quick stamp on one page":        models.ServiceQuickStampLocal,
		"pricing for the growth plan":           models.ServiceBusinessGrowth,
		"we're a small business with contracts": models.ServiceBusinessEssentials,
		"I need something notarized":            models.ServiceStandardNotary,
		"hello there":                           "",
	}
	for text, want := range cases {
		if got := detectServiceType(text); got != want {
			t.Fatalf("detectServiceType(%q) = %q, want %q", text, got, want)
		}
	}
}
