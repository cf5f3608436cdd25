// Package interact implements the driver loop that repeatedly
// evaluates a protocol expression against a state and click, sending
// data to the remote alien server whenever the protocol asks for it,
// grounded directly on original_source/interpreter/src/lib.rs's
// G::interact.
package interact

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/eval"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/galerr"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/library"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/modulate"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/parser"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/transport"
)

// Point is a 2D integer coordinate.
type Point struct {
	X, Y int64
}

// Image is an ordered, lexicographically-sorted sequence of points.
type Image []Point

// Result is the outcome of one completed (terminal) tick: the
// canonicalized new state text, ready to be passed into the next
// tick, and the images the protocol drew.
type Result struct {
	State  string
	Images []Image
}

// Tick runs interact(protocol, state, x, y) to a terminal flag,
// round-tripping through sender whenever the protocol requests a send.
// log, if non-nil, receives one Debug entry per send/receive; pass nil
// to run silently. Panics recovered back into err include the offending
// term or bit-string per spec §7.
func Tick(env *library.Environment, sender transport.Sender, protocol, state string, x, y int64, log *logrus.Entry) (result Result, err error) {
	defer galerr.Recover(&err)
	//
	vector := fmt.Sprintf("ap ap vec %d %d", x, y)
	//
	for {
		sess := eval.NewSession(env)
		//
		exprText := fmt.Sprintf("ap ap %s %s %s", protocol, state, vector)
		parsed, perr := parser.ParseExpr(exprText, env)
		if perr != nil {
			return Result{}, perr
		}
		//
		elems := sess.ForceList(term.NewShared(parsed))
		if len(elems) != 3 {
			galerr.Raise(galerr.FlagFault, exprText, "interact result is not a 3-list (flag, state, data)")
		}
		//
		flagSh, stateSh, dataSh := elems[0], elems[1], elems[2]
		//
		// Round-trip the new state through the codec to canonicalize its
		// representation to a fully-normalized cons/nil/Num tree (spec §4.4
		// step 4), then render it back to text for the next iteration (or
		// for the final result).
		state = modulate.Decode(modulate.Encode(sess, stateSh)).String()
		//
		flag := sess.ForceNum(flagSh)
		//
		switch flag {
		case 0:
			if log != nil {
				log.WithField("state", state).Debug("interact reached terminal flag")
			}
			//
			return Result{State: state, Images: collectImages(sess, dataSh)}, nil
		case 1:
			bits := modulate.Encode(sess, dataSh)
			//
			if log != nil {
				log.WithField("bits", bits).Debug("interact sending data to alien server")
			}
			//
			reply, serr := sender.Send(context.Background(), bits)
			if serr != nil {
				galerr.Raise(galerr.TransportFault, bits, serr.Error())
			}
			//
			if log != nil {
				log.WithField("bits", reply).Debug("interact received alien server reply")
			}
			//
			vector = modulate.Decode(reply).String()
		default:
			galerr.Raise(galerr.FlagFault, fmt.Sprintf("%d", flag), "unknown interact flag")
		}
	}
}

func collectImages(sess *eval.Session, dataSh *term.Shared) []Image {
	imageShs := sess.ForceList(dataSh)
	images := make([]Image, len(imageShs))
	//
	for i, imgSh := range imageShs {
		pointShs := sess.ForceList(imgSh)
		img := make(Image, len(pointShs))
		//
		for j, pointSh := range pointShs {
			x, y := sess.ForcePoint(pointSh)
			img[j] = Point{X: x, Y: y}
		}
		//
		sort.Slice(img, func(a, b int) bool {
			if img[a].X != img[b].X {
				return img[a].X < img[b].X
			}
			//
			return img[a].Y < img[b].Y
		})
		//
		images[i] = img
	}
	//
	return images
}
