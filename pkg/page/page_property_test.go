package page

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-ctk/pkg/component"
	"github.com/goliatone/go-ctk/pkg/postprocess"
	"github.com/goliatone/go-ctk/pkg/render"
	"github.com/goliatone/go-ctk/pkg/render/template"
)

func headerGen() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf("A", "B", "C", "D", "E"), reflect.TypeOf(""))
}

func firstSeen(seq []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, value := range seq {
		if !seen[value] {
			seen[value] = true
			out = append(out, value)
		}
	}
	return out
}

func TestPageProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8642)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("head is the first-seen dedup of base then tree headers", prop.ForAll(
		func(base, tree []string) bool {
			p := New(
				WithBaseHeaders(base...),
				WithTemplate(template.New("%(head)s")),
				WithPostprocessor(postprocess.NewChain()),
			)
			p.MustAdd(component.NewHeaders(tree...))

			got, err := p.Render(context.Background())
			if err != nil {
				return false
			}
			return got == strings.Join(firstSeen(append(append([]string{}, base...), tree...)), "\n")
		},
		headerGen(),
		headerGen(),
	))

	properties.Property("rendering twice is byte identical", prop.ForAll(
		func(words []string) bool {
			p := New()
			for idx, word := range words {
				p.MustAdd(
					component.MustElement("span", nil, component.NewText(word)),
					component.NewHelp(word, strings.Repeat(word, idx+1)),
					component.NewScript(word+"();"),
				)
			}
			first, err := p.Render(context.Background())
			if err != nil {
				return false
			}
			second, err := p.Render(context.Background())
			return err == nil && first == second
		},
		headerGen(),
	))

	properties.Property("container markup equals concatenated child markup", prop.ForAll(
		func(words []string) bool {
			c := &component.Container{}
			var want strings.Builder
			for _, word := range words {
				leaf := component.NewRawHTML("<" + word + "/>")
				c.MustAdd(leaf)
				r, _ := leaf.Render(context.Background())
				want.WriteString(r.Markup())
			}
			got, err := c.Render(context.Background())
			return err == nil && got.Markup() == want.String()
		},
		headerGen(),
	))

	properties.Property("help menu keeps one topic per key", prop.ForAll(
		func(keys []string) bool {
			p := New(WithTemplate(template.New("%(helps)s")), WithPostprocessor(postprocess.NewChain()))
			for idx, key := range keys {
				p.MustAdd(&component.Help{Entries: []render.HelpEntry{{Key: key, Text: strings.Repeat("t", idx+1)}}})
			}
			got, err := p.Render(context.Background())
			if err != nil {
				return false
			}
			return strings.Count(got, `class="help-topic"`) == len(firstSeen(keys))
		},
		headerGen(),
	))

	properties.TestingRun(t)
}
