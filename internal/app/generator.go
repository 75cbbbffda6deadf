package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"hotel_packages/internal/adapters/observability"
	"hotel_packages/internal/domain"
)

const clipboardFailedNotice = "Could not copy to the clipboard. The text below can still be copied manually."

// Generator runs one generate action end to end and, on request, hands the
// copy text to the clipboard.
type Generator struct {
	f    *Formatter
	clip domain.Clipboard
}

func NewGenerator(f *Formatter, clip domain.Clipboard) *Generator {
	return &Generator{f: f, clip: clip}
}

// Generate is read -> validate -> combine -> rank -> format. Validation
// failures come back as ErrorMessage with no blocks and no copy text.
func (g *Generator) Generate(form domain.Form) domain.Result {
	cityA, cityB := g.f.CityNames()
	guests := ReadGuests(string(form.Adults), string(form.Children))
	a := ReadEntries(form.CityA)
	b := ReadEntries(form.CityB)

	v := Validate(guests.Total(), a, b)
	if !v.OK() {
		observability.ObserveGeneration(v.Kind.String(), 0)
		log.Info().Err(v.Err()).Int("guests", guests.Total()).
			Int("entries_a", len(a)).Int("entries_b", len(b)).
			Msg("generation rejected")
		return failed(v.Message(cityA, cityB))
	}

	pkgs, err := Combine(a, b, guests.Total())
	if err != nil {
		log.Error().Err(err).Msg("combine failed after validation")
		return failed(err.Error())
	}
	ranked := Rank(pkgs)

	r := g.f.Format(ranked, domain.ParseItineraryOrder(form.Order, cityA, cityB))
	if r.Empty {
		observability.ObserveGeneration("empty", 0)
		log.Warn().Err(domain.ErrEmptyCombination).Msg("no packages")
	} else {
		observability.ObserveGeneration("ok", len(ranked))
	}
	return domain.Result{Rendering: r, Packages: ranked}
}

// Copy writes res.CopyText to the clipboard. A failure is logged and turned
// into res.Notice; the result stays usable.
func (g *Generator) Copy(ctx context.Context, res *domain.Result) {
	if !res.CanCopy() {
		return
	}
	if g.clip == nil {
		res.Notice = clipboardFailedNotice
		return
	}
	id, err := g.clip.Write(ctx, res.CopyText)
	if err != nil {
		var cwe *domain.ClipboardWriteError
		if !errors.As(err, &cwe) {
			err = &domain.ClipboardWriteError{Err: err}
		}
		log.Warn().Err(err).Msg("clipboard write failed")
		res.Notice = clipboardFailedNotice
		return
	}
	res.ClipID = id
}

// Clip returns previously copied text by id.
func (g *Generator) Clip(ctx context.Context, id string) (string, error) {
	if g.clip == nil {
		return "", domain.ErrClipNotFound
	}
	return g.clip.Read(ctx, id)
}

func failed(msg string) domain.Result {
	return domain.Result{
		Rendering:    domain.Rendering{Empty: true},
		ErrorMessage: &msg,
	}
}
