package intelligence

import (
	"fmt"
	"strings"

	"github.com/jordanlanch/repcoach/pkg/analytics"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/salesstage"
)

// Digest renders interactions, newest first, as compact text for a
// prompt. At most limit entries are included. names maps customer ids to
// display names and may be nil.
func Digest(interactions []models.Interaction, names map[string]string, limit int) string {
	if len(interactions) == 0 {
		return ""
	}

	var b strings.Builder
	for n, i := range analytics.SortByDateDesc(interactions) {
		if n == limit {
			fmt.Fprintf(&b, "... and %d more\n", len(interactions)-limit)
			break
		}
		it := interactions[i]

		who := it.CustomerProfile.Name
		if it.CustomerID != nil {
			if name, ok := names[*it.CustomerID]; ok {
				who = name
			}
		}
		if it.CustomerProfile.Company != "" {
			who += " (" + it.CustomerProfile.Company + ")"
		}

		stage := salesstage.NormalizeString(it.Intelligence.CurrentStage)
		fmt.Fprintf(&b, "- %s | %s | stage %s | probability %.0f%%\n", it.Date, who, stage, it.Intelligence.Probability)
		if len(it.Intelligence.PainPoints) > 0 {
			fmt.Fprintf(&b, "  pain points: %s\n", strings.Join(it.Intelligence.PainPoints, "; "))
		}
		if len(it.Intelligence.KeyInterests) > 0 {
			fmt.Fprintf(&b, "  interests: %s\n", strings.Join(it.Intelligence.KeyInterests, "; "))
		}
		if len(it.Intelligence.NextSteps) > 0 {
			actions := make([]string, len(it.Intelligence.NextSteps))
			for j, s := range it.Intelligence.NextSteps {
				actions[j] = s.Action
			}
			fmt.Fprintf(&b, "  next steps: %s\n", strings.Join(actions, "; "))
		}
	}
	return b.String()
}

func describeCustomer(c *models.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	for _, f := range [][2]string{
		{"Company", c.Company},
		{"Role", c.Role},
		{"Industry", c.Industry},
		{"Notes", c.Notes},
	} {
		if f[1] != "" {
			fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
		}
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(c.Tags, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func describeProfile(p models.CustomerProfile) string {
	parts := []string{}
	for _, v := range []string{p.Name, p.Role, p.Company, p.Industry, p.Summary} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func transcript(history []models.RolePlayMessage) string {
	var b strings.Builder
	for _, m := range history {
		speaker := "Rep"
		if m.Role == models.RolePlayCustomer {
			speaker = "Customer"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, m.Content)
	}
	return b.String()
}
