package component

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ctk/pkg/render"
)

func TestContainerMergesInInsertionOrder(t *testing.T) {
	c := &Container{}
	c.MustAdd(
		NewRawHTML("<c1/>"),
		NewHeaders("B", "C"),
		NewRawHTML("<c2/>"),
		NewScript("a();"),
		NewHelp("k1", "t1"),
		NewRawHTML("<c3/>"),
		NewScript("b();"),
	)

	got, err := c.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Markup() != "<c1/><c2/><c3/>" {
		t.Fatalf("markup = %q", got.Markup())
	}
	if diff := cmp.Diff([]string{"B", "C"}, got.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a();", "b();"}, got.Scripts()); diff != "" {
		t.Fatalf("scripts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]render.HelpEntry{{Key: "k1", Text: "t1"}}, got.Helps()); diff != "" {
		t.Fatalf("helps mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerFlattensDepthFirst(t *testing.T) {
	inner := MustElement("div", nil, NewText("b"), NewHeaders("H2"))
	root := &Container{}
	root.MustAdd(NewText("a"), NewHeaders("H1"), inner, NewText("c"), NewHeaders("H3"))

	got, err := root.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Markup() != "a<div>b</div>c" {
		t.Fatalf("markup = %q", got.Markup())
	}
	if diff := cmp.Diff([]string{"H1", "H2", "H3"}, got.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerRenderIsIdempotent(t *testing.T) {
	root := &Container{}
	root.MustAdd(NewText("x"), NewScript("go();"), MustElement("p", map[string]string{"class": "a"}, NewText("y")))

	first, err := root.Render(context.Background())
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := root.Render(context.Background())
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(render.Result{})); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}

func TestContainerPropagatesChildErrorUnmodified(t *testing.T) {
	boom := &render.RenderError{Component: "widget", Err: errors.New("boom")}
	calledAfter := false

	inner := &Container{}
	inner.MustAdd(Func(func(context.Context) (render.Result, error) {
		return render.Result{}, boom
	}))
	root := &Container{}
	root.MustAdd(NewText("before"), inner, Func(func(context.Context) (render.Result, error) {
		calledAfter = true
		return render.Result{}, nil
	}))

	_, err := root.Render(context.Background())
	if err != boom {
		t.Fatalf("expected original error pointer, got %v", err)
	}
	if calledAfter {
		t.Fatalf("siblings after a failure should not render")
	}
}

func TestContainerHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Container{}
	c.MustAdd(NewText("x"))
	if _, err := c.Render(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAddRejectsInvalidAttachments(t *testing.T) {
	t.Run("nil child", func(t *testing.T) {
		c := &Container{}
		if err := c.Add(nil); !errors.Is(err, render.ErrComposition) {
			t.Fatalf("expected composition error, got %v", err)
		}
	})

	t.Run("child owned elsewhere", func(t *testing.T) {
		leaf := NewText("x")
		first, second := &Container{}, &Container{}
		first.MustAdd(leaf)
		if err := second.Add(leaf); !errors.Is(err, render.ErrComposition) {
			t.Fatalf("expected composition error, got %v", err)
		}
		if leaf.Owner() != first {
			t.Fatalf("owner changed after rejected attach")
		}
	})

	t.Run("self", func(t *testing.T) {
		c := &Container{}
		if err := c.Add(c); !errors.Is(err, render.ErrComposition) {
			t.Fatalf("expected composition error, got %v", err)
		}
	})

	t.Run("ancestor", func(t *testing.T) {
		root := &Container{}
		mid := &Container{}
		leafBox := MustElement("div", nil)
		root.MustAdd(mid)
		mid.MustAdd(leafBox)
		if err := leafBox.Add(root); !errors.Is(err, render.ErrComposition) {
			t.Fatalf("expected composition error, got %v", err)
		}
	})

	t.Run("same child twice in one call", func(t *testing.T) {
		c := &Container{}
		leaf := NewText("x")
		if err := c.Add(leaf, leaf); !errors.Is(err, render.ErrComposition) {
			t.Fatalf("expected composition error, got %v", err)
		}
		if leaf.Owner() != nil || c.Len() != 0 {
			t.Fatalf("failed Add should roll back: owner=%v len=%d", leaf.Owner(), c.Len())
		}
	})

	t.Run("frozen after render", func(t *testing.T) {
		c := &Container{}
		c.MustAdd(NewText("x"))
		if _, err := c.Render(context.Background()); err != nil {
			t.Fatalf("render: %v", err)
		}
		if err := c.Add(NewText("y")); !errors.Is(err, render.ErrComposition) {
			t.Fatalf("expected composition error, got %v", err)
		}
	})
}

func TestFuncComponentsMayBeShared(t *testing.T) {
	shared := Func(func(context.Context) (render.Result, error) {
		return render.Markup("s"), nil
	})
	c := &Container{}
	if err := c.Add(shared, shared); err != nil {
		t.Fatalf("func components carry no ownership: %v", err)
	}
}

func TestParallelRenderKeepsInsertionOrder(t *testing.T) {
	delays := []time.Duration{30 * time.Millisecond, 0, 10 * time.Millisecond, 20 * time.Millisecond}
	c, err := NewContainer([]ContainerOption{WithParallel(len(delays))})
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	for idx, delay := range delays {
		c.MustAdd(Func(func(context.Context) (render.Result, error) {
			time.Sleep(delay)
			return render.Markup(fmt.Sprintf("[%d]", idx)).WithHeaders(fmt.Sprintf("H%d", idx)), nil
		}))
	}

	got, err := c.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Markup() != "[0][1][2][3]" {
		t.Fatalf("markup = %q", got.Markup())
	}
	if diff := cmp.Diff([]string{"H0", "H1", "H2", "H3"}, got.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestParallelRenderReturnsFirstErrorByPosition(t *testing.T) {
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	c, err := NewContainer([]ContainerOption{WithParallel(0)},
		NewText("ok"),
		Func(func(context.Context) (render.Result, error) {
			time.Sleep(20 * time.Millisecond)
			return render.Result{}, errFirst
		}),
		Func(func(context.Context) (render.Result, error) {
			return render.Result{}, errSecond
		}),
	)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if _, err := c.Render(context.Background()); err != errFirst {
		t.Fatalf("expected errFirst, got %v", err)
	}
}
