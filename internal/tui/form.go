package tui

import (
	"github.com/theirongolddev/pbudget/internal/model"
	"github.com/theirongolddev/pbudget/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// formValues backs the huh fields. A fresh value is allocated for every
// new form so a submitted entry never shares state with the next one.
type formValues struct {
	Date     string
	Amount   string
	Category string
	Save     bool
}

func defaultValues() *formValues {
	return &formValues{
		Date: model.Today(),
		Save: true,
	}
}

func (v *formValues) input() model.FormInput {
	return model.FormInput{
		Date:     v.Date,
		Amount:   v.Amount,
		Category: v.Category,
	}
}

func newEntryForm(v *formValues, categories []string) *huh.Form {
	desc := "Type a new category, or ctrl+e to accept a suggestion"
	if len(categories) == 0 {
		desc = "No categories yet - type the first one"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				CharLimit(10).
				Value(&v.Date),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				CharLimit(20).
				Value(&v.Amount),
			huh.NewInput().
				Key("category").
				Title("Category").
				Description(desc).
				Suggestions(categories).
				CharLimit(64).
				Value(&v.Category),
			huh.NewConfirm().
				Key("save").
				Title("Save this entry?").
				Affirmative("Save").
				Negative("Clear").
				Value(&v.Save),
		),
	).
		WithTheme(theme.Active.Huh()).
		WithShowHelp(true)
}
