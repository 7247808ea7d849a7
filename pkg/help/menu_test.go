package help

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-ctk/internal/logging"
	"github.com/goliatone/go-ctk/pkg/render"
)

func TestMenuDeduplicatesByKeyFirstWins(t *testing.T) {
	menu := NewMenu([]render.HelpEntry{
		{Key: "k1", Text: "t1"},
		{Key: "k1", Text: "t2"},
		{Key: "k2", Text: "t3"},
	})

	got, err := menu.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	topics := topicsFromMarkup(t, got.Markup())
	want := map[string]string{"k1": "t1", "k2": "t3"}
	if diff := cmp.Diff(want, topics); diff != "" {
		t.Fatalf("topics mismatch (-want +got):\n%s", diff)
	}
	if strings.Index(got.Markup(), `data-help-key="k1"`) > strings.Index(got.Markup(), `data-help-key="k2"`) {
		t.Fatalf("topics out of first-seen order:\n%s", got.Markup())
	}
	if len(got.Headers()) != 0 || len(got.Scripts()) != 0 || len(got.Helps()) != 0 {
		t.Fatalf("menu should only produce markup")
	}
}

func TestMenuLogsDuplicates(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New(&buf, "text", slog.LevelDebug))

	menu := NewMenu([]render.HelpEntry{{Key: "k1", Text: "t1"}, {Key: "k1", Text: "t2"}, {Key: " ", Text: "orphan"}})
	if _, err := menu.Render(ctx); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "duplicate key ignored") || !strings.Contains(out, "dropped=t2") {
		t.Fatalf("expected duplicate log record, got %q", out)
	}
	if !strings.Contains(out, "skipping entry without key") {
		t.Fatalf("expected empty key warning, got %q", out)
	}
}

func TestMenuKeysAreExact(t *testing.T) {
	menu := NewMenu([]render.HelpEntry{{Key: "k1", Text: "t1"}, {Key: " k1", Text: "t2"}})
	want := []render.HelpEntry{{Key: "k1", Text: "t1"}, {Key: " k1", Text: "t2"}}
	if diff := cmp.Diff(want, menu.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestMenuAnchorIDs(t *testing.T) {
	menu := NewMenu([]render.HelpEntry{
		{Key: "virtual server", Text: "a"},
		{Key: "virtual-server", Text: "b"},
		{Key: "menu", Text: "c"},
		{Key: "¿?", Text: "d"},
	})
	got, err := menu.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(got.Markup()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ids, hrefs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				switch {
				case attr.Key == "id":
					ids = append(ids, attr.Val)
				case attr.Key == "href":
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	wantIDs := []string{"help-menu", "help-virtual-server", "help-virtual-server-2", "help-menu-2", "help-topic"}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	wantHrefs := []string{"#help-virtual-server", "#help-virtual-server-2", "#help-menu-2", "#help-topic"}
	if diff := cmp.Diff(wantHrefs, hrefs); diff != "" {
		t.Fatalf("hrefs mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got.Markup(), `data-help-key="virtual server"`) {
		t.Fatalf("raw key lost:\n%s", got.Markup())
	}
}

func TestMenuEmpty(t *testing.T) {
	got, err := NewMenu(nil).Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Markup() != "" {
		t.Fatalf("expected empty markup, got %q", got.Markup())
	}
}

func TestMenuSanitisesText(t *testing.T) {
	menu := NewMenu([]render.HelpEntry{
		{Key: `a"b`, Text: `<script>alert(1)</script><em>Careful</em> <a href="/help/rules.html" onclick="x()">rules</a>`},
	})
	got, err := menu.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := got.Markup()
	for _, banned := range []string{"<script", "onclick", `data-help-key="a"b"`} {
		if strings.Contains(markup, banned) {
			t.Fatalf("markup contains %q:\n%s", banned, markup)
		}
	}
	for _, kept := range []string{"<em>Careful</em>", `href="/help/rules.html"`, `data-help-key="a&#34;b"`} {
		if !strings.Contains(markup, kept) {
			t.Fatalf("markup lost %q:\n%s", kept, markup)
		}
	}
}

func TestMenuMarkdownText(t *testing.T) {
	menu := NewMenu([]render.HelpEntry{
		{Key: "save", Text: "**Save** the `form` first.\n\n<script>alert(1)</script>"},
	}, WithMarkdown())
	got, err := menu.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := got.Markup()
	for _, kept := range []string{"<strong>Save</strong>", "<code>form</code>"} {
		if !strings.Contains(markup, kept) {
			t.Fatalf("markup lost %q:\n%s", kept, markup)
		}
	}
	if strings.Contains(markup, "<script") {
		t.Fatalf("raw html survived markdown conversion:\n%s", markup)
	}
}

func TestEntriesAreDeduplicated(t *testing.T) {
	menu := NewMenu([]render.HelpEntry{{Key: "a", Text: "1"}, {Key: "a", Text: "2"}, {Key: "b", Text: "3"}})
	want := []render.HelpEntry{{Key: "a", Text: "1"}, {Key: "b", Text: "3"}}
	if diff := cmp.Diff(want, menu.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// topicsFromMarkup maps each data-help-key to the text of its help-text div.
func topicsFromMarkup(t *testing.T, markup string) map[string]string {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}

	topics := make(map[string]string)
	var walk func(n *html.Node, key string)
	walk = func(n *html.Node, key string) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "data-help-key" {
					key = attr.Val
				}
				if attr.Key == "class" && attr.Val == "help-text" && n.FirstChild != nil {
					topics[key] = n.FirstChild.Data
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, key)
		}
	}
	walk(doc, "")
	return topics
}
