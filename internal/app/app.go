// Package app implements the §2/§5 core loop: a single-threaded,
// cooperative cycle of read-key, dispatch, render, paint, driven by a
// select over stdin, timers, a resize signal, and async tool results.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"syscall"
	"time"

	"github.com/readwiseio/readwise-cli/internal/argsconv"
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/input"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/platform/signal"
	"github.com/readwiseio/readwise-cli/internal/term"
	"github.com/readwiseio/readwise-cli/internal/toolerr"
	"github.com/readwiseio/readwise-cli/internal/views"
)

const (
	spinnerInterval = 80 * time.Millisecond
	messageInterval = time.Second
	quitConfirmTTL  = 2 * time.Second
)

// Loop owns the terminal and the remote service for one interactive
// session (§2).
type Loop struct {
	screen         *term.Screen
	service        mcp.Service
	tools          []mcp.ToolDef
	connectionInfo string
}

// New builds a Loop ready to Run. connectionInfo is shown as a dim
// diagnostics line on the Commands view (§4.6 supplemented feature).
func New(screen *term.Screen, service mcp.Service, tools []mcp.ToolDef, connectionInfo string) *Loop {
	return &Loop{screen: screen, service: service, tools: tools, connectionInfo: connectionInfo}
}

// Run drives the event loop until the user quits or ctx is cancelled
// (§2, §5). It owns full-screen mode for its entire duration.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.screen.EnterFullScreen(); err != nil {
		return err
	}
	defer l.screen.ExitFullScreen()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigHandler := signal.NewHandler()
	resizeCh := make(chan struct{}, 1)
	sigHandler.Register(func(os.Signal) {
		select {
		case resizeCh <- struct{}{}:
		default:
		}
	}, syscall.SIGWINCH)
	sigHandler.Register(func(os.Signal) { cancel() }, signal.InterruptSignals...)
	sigHandler.Start()
	defer sigHandler.Stop()

	keyCh := make(chan term.KeyEvent, 8)
	go l.readKeys(keyCh)

	msgs := views.LoadingMessages
	rand.Shuffle(len(msgs), func(i, j int) { msgs[i], msgs[j] = msgs[j], msgs[i] })

	state := formcore.AppState{
		View:           formcore.ViewCommands,
		Tools:          l.tools,
		CmdFiltered:    formcore.FilterCommands(l.tools, ""),
		ConnectionInfo: l.connectionInfo,
	}

	spinnerTicker := time.NewTicker(spinnerInterval)
	defer spinnerTicker.Stop()
	msgTicker := time.NewTicker(messageInterval)
	defer msgTicker.Stop()

	var quitTimer *time.Timer
	var quitTimerC <-chan time.Time
	quitConfirmWas := false

	resultCh := make(chan callOutcome, 1)

	l.paint(state)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-keyCh:
			next, sig := input.Handle(state, ev)
			state = next
			if sig == input.SignalExit {
				return nil
			}
			if sig == input.SignalSubmit {
				go l.invoke(ctx, state, resultCh)
			}
			if sig == input.SignalCopyResult {
				state.StatusMessage = copyResult(state)
			}
			l.paint(state)

			if state.QuitConfirm && !quitConfirmWas {
				quitTimer = time.NewTimer(quitConfirmTTL)
				quitTimerC = quitTimer.C
			} else if !state.QuitConfirm && quitTimer != nil {
				quitTimer.Stop()
				quitTimerC = nil
			}
			quitConfirmWas = state.QuitConfirm

		case <-resizeCh:
			l.paint(state)

		case <-spinnerTicker.C:
			if state.View == formcore.ViewLoading {
				state.SpinnerFrame++
				l.paint(state)
			}

		case <-msgTicker.C:
			if state.View == formcore.ViewLoading && len(views.LoadingMessages) > 0 {
				state.SpinnerMsgIdx = (state.SpinnerMsgIdx + 1) % len(views.LoadingMessages)
				l.paint(state)
			}

		case <-quitTimerC:
			state.QuitConfirm = false
			quitConfirmWas = false
			quitTimerC = nil
			l.paint(state)

		case out := <-resultCh:
			state.View = formcore.ViewResults
			state.Result = out.value
			state.ResultErr = out.err
			state.ResultScroll = 0
			state.ResultScrollX = 0
			l.paint(state)
		}
	}
}

func (l *Loop) paint(s formcore.AppState) {
	cols, rows := l.screen.Size()
	l.screen.Paint(views.Render(s, cols, rows))
}

// readKeys feeds keyCh from stdin until Read fails (process exit or
// stdin closed); it does not itself observe ctx because Read blocks on
// the fd and cannot be interrupted from here (§4.1/§5 leave stdin
// teardown to process exit).
func (l *Loop) readKeys(keyCh chan<- term.KeyEvent) {
	for {
		buf, err := l.screen.ReadInput()
		if err != nil {
			return
		}
		for _, ev := range term.DecodeKey(buf) {
			keyCh <- ev
		}
	}
}

type callOutcome struct {
	value interface{}
	err   *toolerr.Error
}

func (l *Loop) invoke(ctx context.Context, s formcore.AppState, out chan<- callOutcome) {
	args := argsconv.Build(s.Fields, s.Values)
	res, err := l.service.CallTool(ctx, s.SelectedTool.Name, args)
	if err != nil {
		out <- callOutcome{err: asToolErr(err)}
		return
	}
	out <- callOutcome{value: decodeCallResult(res)}
}

// asToolErr recovers the *toolerr.Error every Service implementation is
// expected to return (§6/§7); a collaborator that returns a bare error
// is still shown to the user rather than dropped.
func asToolErr(err error) *toolerr.Error {
	var terr *toolerr.Error
	if errors.As(err, &terr) {
		return terr
	}
	return toolerr.Transport(err)
}

// decodeCallResult turns a §6 CallResult into the value the Results
// view renders: the concatenated text content parsed as JSON when
// possible, else the raw text; only when content is empty does it fall
// back to structured content, and only when both are empty does it
// produce the success sentinel (§4.6, §6).
func decodeCallResult(res *mcp.CallResult) interface{} {
	var text string
	for i, c := range res.Content {
		if i > 0 {
			text += "\n"
		}
		text += c.Text
	}

	if text == "" {
		if res.StructuredContent != nil {
			return res.StructuredContent
		}
		return formcore.SuccessSentinel
	}

	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v
	}
	return text
}
