package evidence

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/yuin/goldmark"
)

// RenderMarkdown renders a bundle as a lightweight markdown document.
func RenderMarkdown(b Bundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", b.Title)
	fmt.Fprintf(&sb, "**Önem derecesi:** %s\n\n", b.Severity)
	if b.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", b.Summary)
	}

	if len(b.Items) > 0 {
		sb.WriteString("## Kanıtlar\n\n")
		for _, item := range b.Items {
			marker := "-"
			if item.Critical {
				marker = "- **!**"
			}
			fmt.Fprintf(&sb, "%s %s: %s", marker, item.Label, item.Value)
			if item.Note != "" {
				fmt.Fprintf(&sb, " (%s)", item.Note)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(b.FormulaTrace) > 0 {
		sb.WriteString("## Hesaplama\n\n")
		for _, line := range b.FormulaTrace {
			fmt.Fprintf(&sb, "    %s\n", line)
		}
		sb.WriteString("\n")
	}

	if b.Sector != nil {
		sb.WriteString("## Sektör karşılaştırması\n\n")
		fmt.Fprintf(&sb, "- Sektör: %s (%s)\n", b.Sector.Name, b.Sector.Code)
		fmt.Fprintf(&sb, "- Sektör aralığı: [%.2f, %.2f]\n", b.Sector.RangeMin, b.Sector.RangeMax)
		fmt.Fprintf(&sb, "- Sapma: %%%.1f (%s)\n\n", b.Sector.DeviationPercent, b.Sector.DeviationType)
	}

	if len(b.LegalReferences) > 0 {
		sb.WriteString("## Yasal dayanak\n\n")
		for _, ref := range b.LegalReferences {
			fmt.Fprintf(&sb, "- **%s %s** (%s): %s\n", ref.Statute, ref.Article, ref.Title, ref.Excerpt)
		}
		sb.WriteString("\n")
	}

	if len(b.Recommendations) > 0 {
		sb.WriteString("## Öneriler\n\n")
		for _, rec := range b.Recommendations {
			fmt.Fprintf(&sb, "- %s\n", rec)
		}
		sb.WriteString("\n")
	}

	if len(b.NextSteps) > 0 {
		sb.WriteString("## Sonraki adımlar\n\n")
		for i, step := range b.NextSteps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
	}

	return sb.String()
}

// RenderHTML renders a bundle as an HTML fragment via the markdown form.
func RenderHTML(b Bundle) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderMarkdown(b)), &buf); err != nil {
		return "", fmt.Errorf("failed to render bundle %s: %w", b.ID, err)
	}
	return buf.String(), nil
}

// ToMap converts a bundle into a plain key-value form for callers that
// post-process findings without depending on the bundle type.
func ToMap(b Bundle) map[string]any {
	items := make([]map[string]any, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, map[string]any{
			"category": item.Category,
			"label":    item.Label,
			"value":    item.Value,
			"note":     item.Note,
			"critical": item.Critical,
		})
	}

	refs := make([]map[string]any, 0, len(b.LegalReferences))
	for _, ref := range b.LegalReferences {
		refs = append(refs, map[string]any{
			"id":      ref.ID,
			"statute": ref.Statute,
			"article": ref.Article,
			"title":   ref.Title,
		})
	}

	m := map[string]any{
		"id":               b.ID,
		"finding_id":       b.FindingID,
		"title":            b.Title,
		"summary":          b.Summary,
		"severity":         b.Severity.String(),
		"items":            items,
		"legal_references": refs,
		"recommendations":  b.Recommendations,
		"next_steps":       b.NextSteps,
	}
	if len(b.FormulaTrace) > 0 {
		m["formula_trace"] = b.FormulaTrace
	}
	if b.Sector != nil {
		m["sector"] = map[string]any{
			"code":              b.Sector.Code,
			"name":              b.Sector.Name,
			"deviation_type":    b.Sector.DeviationType,
			"deviation_percent": b.Sector.DeviationPercent,
		}
	}
	return m
}

// EncodeMsgpack serializes the plain-data form of a bundle.
func EncodeMsgpack(b Bundle) ([]byte, error) {
	data, err := msgpack.Marshal(ToMap(b))
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle %s: %w", b.ID, err)
	}
	return data, nil
}

// DecodeMsgpack restores the plain-data form of a bundle.
func DecodeMsgpack(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}
	return m, nil
}
