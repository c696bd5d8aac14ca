// Package viewmodel turns category entries into display-ready data for the
// terminal UI and the CLI.
package viewmodel

import (
	"fmt"
	"strings"

	"github.com/Veraticus/taxref/internal/model"
)

// CardView is the summary shown for one entry in a result list.
type CardView struct {
	Name          string
	Code          string
	Category      string
	Description   string
	Resident      string
	NonResident   string
	Exemption     string
	Threshold     string
	HealthSummary string
	Kind          model.Kind
}

// BuildCard summarizes entry for the result list.
func BuildCard(entry model.Entry) CardView {
	rate := entry.TaxRate()
	card := CardView{
		Kind:        entry.Kind,
		Name:        entry.Name(),
		Code:        entry.Code(),
		Description: entry.Description(),
		Resident:    rate.Resident,
		NonResident: rate.NonResident,
	}

	switch {
	case entry.Kind == model.KindIncome && entry.Income != nil:
		c := entry.Income
		card.Exemption = c.ExemptionLimit
		card.Threshold = c.WithholdingThreshold
		if c.HealthInsuranceCode != "" && c.HealthInsuranceName != "" {
			card.HealthSummary = c.HealthInsuranceCode + " - " + c.HealthInsuranceName
		}
	case entry.Kind == model.KindOccupation && entry.Occupation != nil:
		card.Category = entry.Occupation.Category
	}

	return card
}

// Lines returns the card content as label/value lines, omitting empty ones.
func (c CardView) Lines() []string {
	lines := make([]string, 0, 8)
	lines = append(lines, LabelCode+": "+c.Code)
	if c.Category != "" {
		lines = append(lines, LabelCategory+": "+c.Category)
	}
	if c.Description != "" {
		lines = append(lines, c.Description)
	}
	lines = append(lines,
		LabelResident+": "+c.Resident,
		LabelNonResident+": "+c.NonResident,
	)
	if c.Exemption != "" {
		lines = append(lines, LabelExemption+": "+c.Exemption)
	}
	if c.Threshold != "" {
		lines = append(lines, LabelThreshold+": "+c.Threshold)
	}
	if c.HealthSummary != "" {
		lines = append(lines, "補充健保: "+c.HealthSummary)
	}
	return lines
}

// ListHeader returns the count line shown above a result list.
// A blank query shows the collection size instead of a match count.
func ListHeader(kind model.Kind, query string, matched, total int) string {
	if strings.TrimSpace(query) != "" {
		return fmt.Sprintf("找到 %d 個結果", matched)
	}
	return fmt.Sprintf("共 %d 個%s", total, kind.Label())
}

// EmptyStateView is shown in place of a list with no matches.
type EmptyStateView struct {
	Title string
	Hint  string
}

// EmptyState returns the no-match message for kind.
func EmptyState(kind model.Kind) EmptyStateView {
	return EmptyStateView{
		Title: "找不到相關的" + kind.Label(),
		Hint:  "請嘗試使用不同的關鍵字或檢查拼寫",
	}
}
