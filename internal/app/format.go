package app

import (
	"fmt"
	"strconv"
	"strings"

	"hotel_packages/internal/domain"
)

// Divider separates package blocks in the aggregate copy text.
var Divider = strings.Repeat("-", 32)

const noPackagesMessage = "No valid packages could be generated. Check your inputs."

type Formatter struct {
	cityA, cityB string
	currency     string
}

func NewFormatter(cityA, cityB, currency string) *Formatter {
	return &Formatter{cityA: cityA, cityB: cityB, currency: currency}
}

func (f *Formatter) CityNames() (string, string) { return f.cityA, f.cityB }

// Format renders ranked packages into display blocks and one copy text.
// Option numbers follow the slice order.
func (f *Formatter) Format(pkgs []domain.Package, order domain.ItineraryOrder) domain.Rendering {
	if len(pkgs) == 0 {
		return domain.Rendering{Empty: true, Message: noPackagesMessage}
	}

	blocks := make([]domain.DisplayBlock, 0, len(pkgs))
	texts := make([]string, 0, len(pkgs))
	for i, p := range pkgs {
		b := f.block(i+1, p, order)
		blocks = append(blocks, b)
		texts = append(texts, b.Text)
	}
	return domain.Rendering{
		Blocks:   blocks,
		CopyText: strings.Join(texts, "\n\n"+Divider+"\n\n"),
	}
}

func (f *Formatter) block(n int, p domain.Package, order domain.ItineraryOrder) domain.DisplayBlock {
	a := domain.Section{City: f.cityA, Summary: p.CityA.Description}
	b := domain.Section{City: f.cityB, Summary: p.CityB.Description}
	first, second := a, b
	if order == domain.CityBFirst {
		first, second = b, a
	}
	first.Label = fmt.Sprintf("City 1 (%s)", first.City)
	second.Label = fmt.Sprintf("City 2 (%s)", second.City)

	blk := domain.DisplayBlock{
		Index:     n,
		Heading:   "Option " + strconv.Itoa(n),
		First:     first,
		Second:    second,
		PerPerson: f.currency + Money(p.PerPersonPrice),
		Total:     f.currency + Money(p.TotalPrice),
	}
	blk.Text = plainText(blk)
	return blk
}

func plainText(b domain.DisplayBlock) string {
	var sb strings.Builder
	sb.WriteString(b.Heading)
	sb.WriteString("\n\n")
	sb.WriteString(b.First.Label + ":\n" + b.First.Summary)
	sb.WriteString("\n\n")
	sb.WriteString(b.Second.Label + ":\n" + b.Second.Summary)
	sb.WriteString("\n\n")
	sb.WriteString("Per Person Price: " + b.PerPerson + "\n")
	sb.WriteString("Total Hotel Cost: " + b.Total)
	return sb.String()
}
