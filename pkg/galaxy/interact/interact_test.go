package interact_test

import (
	"context"
	"testing"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/interact"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/library"
)

// noSendSender fails the test if the driver ever tries to round-trip
// to the alien server; used for protocols expected to terminate
// locally on the first tick.
type noSendSender struct{ t *testing.T }

func (n noSendSender) Send(ctx context.Context, bits string) (string, error) {
	n.t.Fatalf("unexpected send of %q", bits)
	return "", nil
}

// Scenario 7: a self-defined, stateless drawing protocol that always
// terminates immediately and echoes the click back as a single point.
func TestStatelessDraw(t *testing.T) {
	env, err := library.Default()
	if err != nil {
		t.Fatalf("load default library: %v", err)
	}
	//
	result, err := interact.Tick(env, noSendSender{t}, "statelessdraw", "nil", 1, 0, nil)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	//
	if result.State != "nil" {
		t.Errorf("state = %q, want %q", result.State, "nil")
	}
	//
	if len(result.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(result.Images))
	}
	//
	want := interact.Image{{X: 1, Y: 0}}
	got := result.Images[0]
	//
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("image = %v, want %v", got, want)
	}
}

// echoSender always returns the same fixed reply, regardless of what
// was sent, and counts how many times it was called.
type echoSender struct {
	reply string
	calls int
}

func (e *echoSender) Send(ctx context.Context, bits string) (string, error) {
	e.calls++
	return e.reply, nil
}

// TestSendThenTerminate exercises a protocol that sends on its first
// tick (state is nil) and terminates on the second (state is not
// nil), proving the driver round-trips through the sender exactly
// once and then stops, rather than terminating immediately or
// looping forever:
//
//	protocol(s, v) = isnil(s) ? (1, cons(1,nil), 0) : (0, s, nil)
//
// built point-free as:
//
//	send_branch      = (1, cons(1,nil), 0)                  -- constant
//	w_nil_nil         = cons(nil, nil)                        -- constant
//	compute_f(s)      = (isnil s) send_branch                 -- ap ap c isnil send_branch
//	compute_h(s)      = cons(0, cons(s, w_nil_nil))            -- ap ap b (ap cons 0) (ap ap c cons w_nil_nil)
//	compute_for_s(s)  = compute_f(s)(compute_h(s))             -- ap ap s compute_f compute_h
//	protocol(s, v)    = compute_for_s(s)                        -- ap ap b t compute_for_s
func TestSendThenTerminate(t *testing.T) {
	libText := `w_nil_nil = ap ap cons nil nil
send_branch = ap ap cons 1 ap ap cons ap ap cons 1 nil ap ap cons 0 nil
compute_f = ap ap c isnil send_branch
compute_h = ap ap b ap cons 0 ap ap c cons w_nil_nil
compute_for_s = ap ap s compute_f compute_h
protocol_bounce = ap ap b t compute_for_s
`
	//
	env, err := library.Load(libText)
	if err != nil {
		t.Fatalf("load library: %v", err)
	}
	//
	sender := &echoSender{reply: "1101000"} // modulate(cons 0 nil)
	//
	result, err := interact.Tick(env, sender, "protocol_bounce", "nil", 2, 3, nil)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	//
	if sender.calls != 1 {
		t.Errorf("sender called %d times, want exactly 1", sender.calls)
	}
	//
	if result.State != "ap ap cons 1 nil" {
		t.Errorf("state = %q, want %q", result.State, "ap ap cons 1 nil")
	}
	//
	if len(result.Images) != 0 {
		t.Errorf("got %d images, want 0", len(result.Images))
	}
}
